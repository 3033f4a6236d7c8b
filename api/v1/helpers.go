package v1

import (
	"strconv"

	"github.com/pkg/errors"
)

func convertStringToInt32(src string) (int32, error) {
	parsed, err := strconv.ParseInt(src, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to convert %q to int32", src)
	}
	return int32(parsed), nil
}
