// internal/handler/http/collect_handler.go
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"reddit-radar/internal/collector"
	"reddit-radar/internal/config"
	"reddit-radar/internal/export"
	"reddit-radar/internal/models"
)

type CollectHandler struct {
	svc    collector.CollectorService
	writer *export.Writer
	cfg    *config.Config
}

func NewCollectHandler(svc collector.CollectorService, writer *export.Writer, cfg *config.Config) *CollectHandler {
	return &CollectHandler{svc: svc, writer: writer, cfg: cfg}
}

// CollectSubreddit godoc
// @Summary Collect posts from a subreddit
// @Description Collects posts (and optionally their comments) from the specified subreddit
// @Tags collect
// @Accept json
// @Produce json
// @Param subreddit query string true "Subreddit name without the r/ prefix"
// @Param sort query string false "Sort mode (hot, new, top, rising)"
// @Param time query string false "Time window for top (hour, day, week, month, year, all)"
// @Param limit query int false "Maximum number of posts to collect"
// @Param comments query bool false "Collect comments for each post"
// @Param save query bool false "Persist results as CSV and JSON files"
// @Success 200 {object} models.CollectResponse
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /collect [get]
func (h *CollectHandler) CollectSubreddit(c echo.Context) error {
	subreddit := c.QueryParam("subreddit")
	if subreddit == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `subreddit` parameter")
	}

	sortMode := c.QueryParam("sort")
	if sortMode == "" {
		sortMode = h.cfg.DefaultSortMode
	}

	timeFilter := c.QueryParam("time")
	if timeFilter == "" {
		timeFilter = h.cfg.DefaultTimeFilter
	}

	limit := h.cfg.DefaultPostLimit
	if l := c.QueryParam("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid `limit`")
		}
		limit = v
	}

	collectComments := h.cfg.CollectComments
	if cc := c.QueryParam("comments"); cc != "" {
		v, err := strconv.ParseBool(cc)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid `comments`")
		}
		collectComments = v
	}

	save := false
	if s := c.QueryParam("save"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid `save`")
		}
		save = v
	}

	timeout := 60 * time.Second
	if collectComments {
		timeout = 600 * time.Second
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
	defer cancel()

	runID := uuid.New().String()
	startTime := time.Now()

	posts, comments, err := h.svc.Collect(ctx, subreddit, limit, sortMode, timeFilter, collectComments)
	if err != nil {
		if errors.Is(err, collector.ErrInvalidSortMode) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, fmt.Sprintf("collect error: %v", err))
	}

	duration := time.Since(startTime)

	var files []string
	if save {
		files, err = h.saveSingle(subreddit, posts, comments)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("export error: %v", err))
		}
	}

	return c.JSON(http.StatusOK, models.CollectResponse{
		Posts:    posts,
		Comments: comments,
		Meta: models.CollectMeta{
			RunID:            runID,
			Subreddit:        subreddit,
			Sort:             sortMode,
			TimeFilter:       timeFilter,
			RequestedLimit:   limit,
			PostCount:        len(posts),
			CommentCount:     len(comments),
			ProcessingTimeMs: duration.Milliseconds(),
			Files:            files,
			Stats:            h.svc.Stats(),
		},
	})
}

// CollectMultiple godoc
// @Summary Collect posts from multiple subreddits
// @Description Collects posts (and optionally comments) from a comma-separated list of subreddits, defaulting to the configured target list
// @Tags collect
// @Accept json
// @Produce json
// @Param subreddits query string false "Comma-separated subreddit names, defaults to the configured targets"
// @Param sort query string false "Sort mode (hot, new, top, rising)"
// @Param time query string false "Time window for top (hour, day, week, month, year, all)"
// @Param limit query int false "Maximum number of posts per subreddit"
// @Param comments query bool false "Collect comments for each post"
// @Param save query bool false "Persist results as CSV and JSON files"
// @Success 200 {object} models.MultiCollectResponse
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /collect/multi [get]
func (h *CollectHandler) CollectMultipleSubreddits(c echo.Context) error {
	subreddits := h.cfg.TargetSubreddits
	if raw := c.QueryParam("subreddits"); raw != "" {
		subreddits = splitList(raw)
		if len(subreddits) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid `subreddits` parameter")
		}
	}

	sortMode := c.QueryParam("sort")
	if sortMode == "" {
		sortMode = h.cfg.DefaultSortMode
	}

	timeFilter := c.QueryParam("time")
	if timeFilter == "" {
		timeFilter = h.cfg.DefaultTimeFilter
	}

	limit := h.cfg.DefaultPostLimit
	if l := c.QueryParam("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid `limit`")
		}
		limit = v
	}

	collectComments := h.cfg.CollectComments
	if cc := c.QueryParam("comments"); cc != "" {
		v, err := strconv.ParseBool(cc)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid `comments`")
		}
		collectComments = v
	}

	save := false
	if s := c.QueryParam("save"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid `save`")
		}
		save = v
	}

	timeout := 300 * time.Second
	if collectComments {
		timeout = 1800 * time.Second
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
	defer cancel()

	runID := uuid.New().String()
	startTime := time.Now()

	posts, comments, err := h.svc.CollectMultiple(ctx, subreddits, limit, sortMode, timeFilter, collectComments)
	if err != nil {
		if errors.Is(err, collector.ErrInvalidSortMode) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, fmt.Sprintf("collect error: %v", err))
	}

	duration := time.Since(startTime)

	var files []string
	if save {
		files, err = h.writer.SaveRun(posts, comments)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("export error: %v", err))
		}
	}

	postCount := 0
	for _, subredditPosts := range posts {
		postCount += len(subredditPosts)
	}

	return c.JSON(http.StatusOK, models.MultiCollectResponse{
		Posts:    posts,
		Comments: comments,
		Meta: models.CollectMeta{
			RunID:            runID,
			Subreddits:       subreddits,
			Sort:             sortMode,
			TimeFilter:       timeFilter,
			RequestedLimit:   limit,
			PostCount:        postCount,
			CommentCount:     len(comments),
			ProcessingTimeMs: duration.Milliseconds(),
			Files:            files,
			Stats:            h.svc.Stats(),
		},
	})
}

func (h *CollectHandler) saveSingle(subreddit string, posts []models.Post, comments []models.Comment) ([]string, error) {
	files, err := h.writer.SavePosts(subreddit, posts)
	if err != nil {
		return nil, err
	}

	if len(comments) > 0 {
		commentFiles, err := h.writer.SaveComments(subreddit+"_comments", comments)
		if err != nil {
			return nil, err
		}
		files = append(files, commentFiles...)
	}

	return files, nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}
