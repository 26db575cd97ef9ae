package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/pressflow/pressflow/pkg/bulk"
	"github.com/pressflow/pressflow/pkg/db"
	"github.com/pressflow/pressflow/pkg/scheduler"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

func (s *Server) createSiteHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		BaseURL     string `json:"base_url"`
		Username    string `json:"username"`
		AppPassword string `json:"app_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.BaseURL == "" || req.Username == "" || req.AppPassword == "" {
		renderError(w, r, fmt.Errorf("base_url, username and app_password are required"), http.StatusBadRequest)
		return
	}

	site := &db.Site{Name: req.Name, BaseURL: req.BaseURL, Username: req.Username, AppPassword: req.AppPassword}
	if err := s.store.CreateSite(r.Context(), site); err != nil {
		log.Printf("[ERROR] failed to create site: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, site)
}

func (s *Server) listSitesHandler(w http.ResponseWriter, r *http.Request) {
	sites, err := s.store.GetSites(r.Context())
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, sites)
}

func (s *Server) deleteSiteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteSite(r.Context(), id); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "deleted"})
}

func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SiteID int64  `json:"site_id"`
		URL    string `json:"url"`
		Title  string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.SiteID == 0 || req.URL == "" {
		renderError(w, r, fmt.Errorf("site_id and url are required"), http.StatusBadRequest)
		return
	}

	feed := &db.Feed{SiteID: req.SiteID, URL: req.URL, Title: req.Title, Enabled: true}
	if err := s.store.CreateFeed(r.Context(), feed); err != nil {
		log.Printf("[ERROR] failed to create feed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, feed)
}

func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	feeds, err := s.store.GetFeeds(r.Context(), id)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, feeds)
}

func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteFeed(r.Context(), id); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "deleted"})
}

func (s *Server) createScheduleHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SiteID        int64  `json:"site_id"`
		FeedID        *int64 `json:"feed_id"`
		Name          string `json:"name"`
		TriggerKind   string `json:"trigger_kind"`
		CronExpr      string `json:"cron_expr"`
		RunAt         string `json:"run_at"` // RFC3339, one-shot only
		Timezone      string `json:"timezone"`
		AutoPublish   bool   `json:"auto_publish"`
		PublishStatus string `json:"publish_status"`
		MaxArticles   int    `json:"max_articles"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.SiteID == 0 {
		renderError(w, r, fmt.Errorf("site_id is required"), http.StatusBadRequest)
		return
	}

	kind := db.TriggerKind(req.TriggerKind)

	// invalid expressions are rejected synchronously, never stored
	expr, err := scheduler.ResolveTrigger(kind, req.CronExpr)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	sched := &db.Schedule{
		SiteID:        req.SiteID,
		Name:          req.Name,
		TriggerKind:   kind,
		CronExpr:      expr,
		Timezone:      req.Timezone,
		AutoPublish:   req.AutoPublish,
		PublishStatus: req.PublishStatus,
		MaxArticles:   req.MaxArticles,
		Enabled:       true,
	}
	if sched.Timezone == "" {
		sched.Timezone = "UTC"
	}
	if sched.PublishStatus == "" {
		sched.PublishStatus = "draft"
	}
	if sched.MaxArticles == 0 {
		sched.MaxArticles = 20
	}
	if req.FeedID != nil {
		sched.FeedID = sql.NullInt64{Int64: *req.FeedID, Valid: true}
	}
	if kind == db.TriggerOnce {
		if req.RunAt == "" {
			renderError(w, r, fmt.Errorf("run_at is required for one-shot schedules"), http.StatusBadRequest)
			return
		}
		runAt, err := time.Parse(time.RFC3339, req.RunAt)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid run_at: %w", err), http.StatusBadRequest)
			return
		}
		sched.RunAt = sql.NullTime{Time: runAt, Valid: true}
	}

	if next, ok, err := scheduler.NextFire(sched, time.Now()); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	} else if ok {
		sched.NextRunAt = sql.NullTime{Time: next, Valid: true}
	}

	if err := s.store.CreateSchedule(r.Context(), sched); err != nil {
		log.Printf("[ERROR] failed to create schedule: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	if err := s.scheduler.Register(r.Context(), sched); err != nil {
		log.Printf("[ERROR] failed to register schedule %d: %v", sched.ID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusCreated, sched)
}

func (s *Server) listSchedulesHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	schedules, err := s.store.GetSchedules(r.Context(), id)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, schedules)
}

func (s *Server) getScheduleHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sched, err := s.store.GetSchedule(r.Context(), id)
	if err != nil {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, sched)
}

func (s *Server) pauseScheduleHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.SetScheduleEnabled(r.Context(), id, false); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	s.scheduler.Unregister(id) // in-flight firing is allowed to finish
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "paused"})
}

func (s *Server) resumeScheduleHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.SetScheduleEnabled(r.Context(), id, true); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	sched, err := s.store.GetSchedule(r.Context(), id)
	if err != nil {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	if err := s.scheduler.Register(r.Context(), sched); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "resumed"})
}

func (s *Server) runScheduleHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	// detached from the request: 202 means accepted, not completed, and a
	// client disconnect must not abort the firing mid-enqueue
	go s.scheduler.FireNow(context.Background(), id)
	renderJSON(w, r, http.StatusAccepted, map[string]string{"result": "fired"})
}

func (s *Server) deleteScheduleHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s.scheduler.Unregister(id)
	if err := s.store.DeleteSchedule(r.Context(), id); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "deleted"})
}

func (s *Server) createTopicJobHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SiteID        int64  `json:"site_id"`
		Topic         string `json:"topic"`
		AutoPublish   bool   `json:"auto_publish"`
		PublishStatus string `json:"publish_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.SiteID == 0 || req.Topic == "" {
		renderError(w, r, fmt.Errorf("site_id and topic are required"), http.StatusBadRequest)
		return
	}
	if req.PublishStatus == "" {
		req.PublishStatus = "draft"
	}

	job := &db.Job{
		SiteID:        req.SiteID,
		SourceKind:    db.SourceTopic,
		Topic:         req.Topic,
		Status:        db.JobStatusPending,
		AutoPublish:   req.AutoPublish,
		PublishStatus: req.PublishStatus,
	}
	if err := s.store.CreateJob(r.Context(), job); err != nil {
		log.Printf("[ERROR] failed to create topic job: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, job)
}

func (s *Server) listJobsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	limit, offset := pagination(r)
	jobs, err := s.store.GetJobs(r.Context(), id, limit, offset)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, jobs)
}

func (s *Server) getJobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	job, err := s.store.GetJob(r.Context(), id)
	if err != nil {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, job)
}

func (s *Server) retryJobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.RetryJob(r.Context(), id); err != nil {
		renderError(w, r, err, http.StatusConflict)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "requeued"})
}

func (s *Server) publishJobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.queue.PublishJob(r.Context(), id); err != nil {
		renderError(w, r, err, http.StatusConflict)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "published"})
}

func (s *Server) deleteJobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteJob(r.Context(), id); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "deleted"})
}

func (s *Server) submitBulkHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SiteID    int64                `json:"site_id"`
		Action    string               `json:"action"`
		TargetIDs []int64              `json:"target_ids"`
		Metadata  *bulk.MetadataUpdate `json:"metadata"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.SiteID == 0 || len(req.TargetIDs) == 0 {
		renderError(w, r, fmt.Errorf("site_id and target_ids are required"), http.StatusBadRequest)
		return
	}

	opID, err := s.bulk.Submit(r.Context(), req.SiteID, db.BulkAction(req.Action), req.TargetIDs, req.Metadata)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusAccepted, map[string]string{"operation_id": opID})
}

func (s *Server) getBulkHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	op, err := s.bulk.GetStatus(r.Context(), id)
	if err != nil {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, op)
}

func (s *Server) listBulkHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	limit, offset := pagination(r)
	ops, err := s.store.GetBulkOperations(r.Context(), id, limit, offset)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, ops)
}

// pathID extracts the numeric {id} path value, writing a 400 on failure
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid id"), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func pagination(r *http.Request) (limit, offset int) {
	limit = 50
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

// renderJSON sends data as JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
