package routing

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/blacklist"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/handlers"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/middleware"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/session"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/task"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/token"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/user"
)

func InitRoutes(api *mux.Router, db *sql.DB, mongoDB *mongo.Database, tokens *token.Service, logger *slog.Logger) {

	sessionRepo := session.NewMySQLSessionRepo(db)
	ledger := blacklist.NewMongoRepo(mongoDB)

	userService := user.NewService(user.NewMongoRepo(mongoDB), sessionRepo, ledger, tokens)
	userHandler := handlers.NewUserHandler(userService, logger)

	taskService := task.NewService(task.NewMongoRepo(mongoDB))
	taskHandler := handlers.NewTaskHandler(taskService, logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	usersRouter := api.PathPrefix("/users").Subrouter()
	tasksRouter := api.PathPrefix("/tasks").Subrouter()

	/* auth routers: logout extracts its own token, so no middleware here */
	usersRouter.HandleFunc("/register", userHandler.Register).Methods("POST").Name("register")
	usersRouter.HandleFunc("/login", userHandler.Login).Methods("POST").Name("login")
	usersRouter.HandleFunc("/logout", userHandler.Logout).Methods("POST").Name("logout")

	/* task routers, all behind the authorization pipeline */
	tasksRouter.Use(middleware.Auth(ledger, tokens))
	tasksRouter.HandleFunc("", taskHandler.CreateTask).Methods("POST")
	tasksRouter.HandleFunc("", taskHandler.GetAllTasks).Methods("GET")
	tasksRouter.HandleFunc("/{task_id:[a-zA-Z0-9]+}", taskHandler.GetTaskByID).Methods("GET")
	tasksRouter.HandleFunc("/{task_id:[a-zA-Z0-9]+}", taskHandler.UpdateTask).Methods("PUT")
	tasksRouter.HandleFunc("/{task_id:[a-zA-Z0-9]+}", taskHandler.DeleteTask).Methods("DELETE")
}

func ServeHealth(r *mux.Router) {
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("server up!")); err != nil {
			return
		}
	}).Methods("GET")
}

func StartServer(handler http.Handler, port string) {
	fmt.Println("\n\033[32m", "The server is running on http://localhost:"+port, "\033[0m")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal("Server failed:", err)
	}
}
