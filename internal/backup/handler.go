package backup

//go:generate mockgen -source=$GOFILE -destination=backup_mocks_test.go -package=backup_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type backupRepo interface {
	Save(ctx context.Context, snapshot Snapshot) error
	Get(ctx context.Context, userID string) (*Snapshot, error)
}

type SaveBackupResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	repo    backupRepo
	metrics *metrics.Manager
	now     func() time.Time
}

func NewHandler(repo backupRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
		now:     time.Now,
	}
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "backupHandler.save")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, PUT, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var snapshot Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		log.Errorf("save backup, unmarshal json params: %s", err)
		http.Error(w, "malformed backup payload", http.StatusUnprocessableEntity)
		return
	}

	if err := snapshot.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	// the server owns sync time; a client-sent value is kept only so
	// that restored snapshots re-upload cleanly
	if snapshot.LastSynced == "" {
		snapshot.LastSynced = handler.now().UTC().Format(time.RFC3339)
	}

	if err := handler.repo.Save(ctx, snapshot); err != nil {
		log.Errorf("save backup for user %s: %s", snapshot.UserID, err)
		http.Error(w, "failed to save backup", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterBackupsSaved.Inc()

	respBytes, err := json.Marshal(SaveBackupResponse{
		Status:    "success",
		Message:   "backup saved",
		Timestamp: snapshot.LastSynced,
	})
	if err != nil {
		log.Errorf("save backup, marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "backupHandler.get")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	vars := mux.Vars(r)
	userID := strings.TrimSpace(vars["userId"])
	if userID == "" {
		http.Error(w, "user id missing", http.StatusBadRequest)
		return
	}

	snapshot, err := handler.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrBackupNotFound) {
			http.Error(w, "no backup found for this user", http.StatusNotFound)
			return
		}
		log.Errorf("get backup for user %s: %s", userID, err)
		http.Error(w, "failed to retrieve backup", http.StatusInternalServerError)
		return
	}

	snapshotBytes, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("get backup for user %s, marshal snapshot: %s", userID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterBackupsRetrieved.Inc()

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, snapshotBytes)
}
