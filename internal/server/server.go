package server

import (
	"net/http"

	logger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"roomly/internal/handlers"
	"roomly/internal/handlers/auth"
	"roomly/internal/handlers/room"
	"roomly/internal/handlers/user"
	"roomly/internal/middleware"
	"roomly/internal/service"
	"roomly/internal/store"
)

type Server struct {
	Addr      string
	JWTSecret string
	JWTTTLHrs int

	rooms *service.RoomService
	users store.UserStore
}

func NewServer(addr string, db *mongo.Database, jwtSecret string, jwtTTL int) *Server {
	users := store.NewMongoUserStore(db)
	rooms := service.NewRoomService(store.NewMongoRoomStore(db, users))
	return &Server{
		Addr:      addr,
		JWTSecret: jwtSecret,
		JWTTTLHrs: jwtTTL,
		rooms:     rooms,
		users:     users,
	}
}

func HandlerFunc(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(logger.Logger("router", logrus.StandardLogger()))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", handlers.HealthCheck)

	// auth routes (public)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", HandlerFunc(&auth.SignupHandler{Users: s.users}))
		r.Post("/login", HandlerFunc(&auth.LoginHandler{
			Users:     s.users,
			JWTSecret: s.JWTSecret,
			JWTTTLHrs: s.JWTTTLHrs,
		}))
	})

	r.Route("/user", func(r chi.Router) {
		r.Use(middleware.AuthJWT(s.JWTSecret))
		r.Get("/me", HandlerFunc(&user.MeHandler{Users: s.users}))
	})

	r.Route("/rooms", func(r chi.Router) {
		// fetching a single room is public
		r.Get("/{id}", HandlerFunc(&room.GetRoomHandler{Rooms: s.rooms}))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(s.JWTSecret))
			r.Post("/", HandlerFunc(&room.CreateRoomHandler{Rooms: s.rooms}))
			r.Get("/", HandlerFunc(&room.UserRoomsHandler{Rooms: s.rooms}))
			r.Get("/all", HandlerFunc(&room.ListRoomsHandler{Rooms: s.rooms}))
			r.Patch("/{id}", HandlerFunc(&room.UpdateRoomHandler{Rooms: s.rooms}))
			r.Post("/{id}/members", HandlerFunc(&room.AddMembersHandler{Rooms: s.rooms}))
			r.Delete("/{id}", HandlerFunc(&room.DeleteRoomHandler{Rooms: s.rooms}))
		})
	})

	return r
}

func (s *Server) Run() error {
	logrus.Infof("server running on %s", s.Addr)
	return http.ListenAndServe(s.Addr, s.Router())
}
