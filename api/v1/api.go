package v1

import (
	"net/http"
	"os"

	"github.com/bookly/bookly/log"
	"github.com/bookly/bookly/middleware"
	"github.com/bookly/bookly/store"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	store  *store.Store
	router *mux.Router
}

func Server(router *mux.Router, store *store.Store) {
	handler := &Handler{
		store:  store,
		router: router,
	}

	sr := router.PathPrefix("/api").Subrouter()
	middleware := middleware.NewMiddleware(handler.store)
	sr.Use(middleware.HandleCORS)
	sr.Use(middleware.LoggingRequest)

	sSetting, err := store.GetOrUpsetSystemSecuritySetting()
	if err != nil {
		log.Logger.Error("Error getting security setting", zap.Error(err))
		os.Exit(1)
	}
	jwtSecret := sSetting.JWTSecret
	// Add authentication middleware
	sr.Use(NewAuthInterceptor(store, jwtSecret).AuthenticationInterceptor)
	sr.Methods(http.MethodOptions)

	sr.HandleFunc("/signup", handler.signUp).Methods(http.MethodPost)
	sr.HandleFunc("/signin", handler.signIn).Methods(http.MethodPost)
	sr.HandleFunc("/signout", handler.signOut).Methods(http.MethodPost)
	sr.HandleFunc("/session", handler.currentSession).Methods(http.MethodGet)

	sr.HandleFunc("/books", handler.listBooks).Methods(http.MethodGet)
	sr.HandleFunc("/books", handler.createBook).Methods(http.MethodPost)
	sr.HandleFunc("/books/populate", handler.populateBooks).Methods(http.MethodPost)
	sr.HandleFunc("/books/{id}", handler.updateBook).Methods(http.MethodPut)
	sr.HandleFunc("/books/{id}", handler.deleteBook).Methods(http.MethodDelete)

	sr.HandleFunc("/recommend", handler.recommendBooks).Methods(http.MethodPost)

	sr.HandleFunc("/status", handler.createStatusCheck).Methods(http.MethodPost)
	sr.HandleFunc("/status", handler.listStatusChecks).Methods(http.MethodGet)
}
