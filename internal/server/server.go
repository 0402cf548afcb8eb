package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"taskdeck/internal/config"
	"taskdeck/internal/handler"
	"taskdeck/internal/persist"
	"taskdeck/internal/store"
)

type Server struct {
	Engine  *gin.Engine
	Store   *store.Store
	Adapter *persist.Adapter
	Config  *config.Config
	Log     zerolog.Logger
}

func Init(cfg *config.Config, log zerolog.Logger) (*Server, error) {
	kv, err := persist.NewFileKV(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	adapter := persist.NewAdapter(kv, cfg.SnapshotKey,
		time.Duration(cfg.PersistDebounceMS)*time.Millisecond, log)

	st := store.New(adapter, log)
	st.Hydrate(nil)
	log.Info().Str("data_dir", cfg.DataDir).Msg("store hydrated")

	r := gin.Default()

	workspaceHandler := handler.NewWorkspaceHandler(st)
	columnHandler := handler.NewColumnHandler(st)
	taskHandler := handler.NewTaskHandler(st)
	templateHandler := handler.NewTemplateHandler(st)
	uiHandler := handler.NewUIHandler(st)
	backupHandler := handler.NewBackupHandler(st)

	// State and backup
	r.GET("/state", backupHandler.GetState)
	r.GET("/backup/export", backupHandler.Export)
	r.POST("/backup/import", backupHandler.Import)
	r.POST("/reset", backupHandler.Reset)

	// Workspace routes
	r.POST("/workspaces", workspaceHandler.Create)
	r.GET("/workspaces", workspaceHandler.GetAll)
	r.PUT("/workspaces/:id", workspaceHandler.Rename)
	r.DELETE("/workspaces/:id", workspaceHandler.Delete)
	r.POST("/workspaces/:id/activate", workspaceHandler.Activate)
	r.POST("/workspaces/:id/columns/reorder", workspaceHandler.ReorderColumns)
	r.GET("/workspaces/:id/templates", workspaceHandler.GetTemplates)

	// Column routes
	r.POST("/columns", columnHandler.Create)
	r.PUT("/columns/:id", columnHandler.Rename)
	r.DELETE("/columns/:id", columnHandler.Delete)
	r.PUT("/columns/:id/show-completed", columnHandler.SetShowCompleted)
	r.GET("/columns/:id/tasks", columnHandler.GetTasks)
	r.POST("/columns/:id/tasks/reorder", columnHandler.ReorderTasks)

	// Task routes
	r.POST("/tasks", taskHandler.Create)
	r.GET("/tasks/:id", taskHandler.GetByID)
	r.PUT("/tasks/:id", taskHandler.Update)
	r.DELETE("/tasks/:id", taskHandler.Delete)
	r.POST("/tasks/:id/move", taskHandler.Move)
	r.POST("/tasks/:id/due-date", taskHandler.SetDueDate)
	r.POST("/tasks/:id/priority", taskHandler.SetPriority)
	r.POST("/tasks/:id/subtasks", taskHandler.AddSubtask)
	r.PUT("/tasks/:id/subtasks/:index", taskHandler.UpdateSubtask)
	r.DELETE("/tasks/:id/subtasks/:index", taskHandler.DeleteSubtask)
	r.POST("/tasks/:id/subtasks/reorder", taskHandler.ReorderSubtasks)

	// Template routes
	r.POST("/templates", templateHandler.Create)
	r.PUT("/templates/:id", templateHandler.Update)
	r.DELETE("/templates/:id", templateHandler.Delete)

	// Filters and transient UI state
	r.GET("/filters", uiHandler.GetFilters)
	r.POST("/filters/tags/toggle", uiHandler.ToggleTagFilter)
	r.POST("/filters/priorities/toggle", uiHandler.TogglePriorityFilter)
	r.DELETE("/filters", uiHandler.ClearFilters)
	r.POST("/dialog", uiHandler.OpenDialog)
	r.PUT("/dialog/input", uiHandler.SetDialogInput)
	r.POST("/dialog/confirm", uiHandler.ConfirmDialog)
	r.DELETE("/dialog", uiHandler.CloseDialog)
	r.POST("/toasts", uiHandler.PushToast)
	r.DELETE("/toasts/:id", uiHandler.DismissToast)
	r.DELETE("/toasts", uiHandler.ClearToasts)
	r.PUT("/active-task", uiHandler.SetActiveTask)
	r.DELETE("/active-task", uiHandler.ClearActiveTask)
	r.PUT("/theme", uiHandler.SetTheme)

	return &Server{
		Engine:  r,
		Store:   st,
		Adapter: adapter,
		Config:  cfg,
		Log:     log,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Log.Info().Str("port", s.Config.ServerPort).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Log.Fatal().Err(err).Msg("failed to listen")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	// Land any debounced snapshot before exiting.
	s.Adapter.Flush()
	s.Log.Info().Msg("server exited properly")
}
