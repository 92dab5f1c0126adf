// internal/export/writer.go
package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"

	"reddit-radar/internal/models"
)

const timestampLayout = "20060102_150405"

// Writer persists collected records under a root directory as CSV and JSON
// files named <prefix>_<timestamp>.<ext>.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// SavePosts writes posts as both CSV and JSON and returns the paths written.
func (w *Writer) SavePosts(prefix string, posts []models.Post) ([]string, error) {
	if posts == nil {
		posts = []models.Post{}
	}

	timestamp := time.Now().Format(timestampLayout)
	csvPath := filepath.Join(w.dir, fmt.Sprintf("%s_%s.csv", prefix, timestamp))
	jsonPath := filepath.Join(w.dir, fmt.Sprintf("%s_%s.json", prefix, timestamp))

	if err := WritePostsCSV(csvPath, posts); err != nil {
		return nil, err
	}
	if err := WritePostsJSON(jsonPath, posts); err != nil {
		return nil, err
	}

	slog.Info("saved posts", "count", len(posts), "csv", csvPath, "json", jsonPath)
	return []string{csvPath, jsonPath}, nil
}

// SaveComments writes comments as both CSV and JSON and returns the paths written.
func (w *Writer) SaveComments(prefix string, comments []models.Comment) ([]string, error) {
	timestamp := time.Now().Format(timestampLayout)
	csvPath := filepath.Join(w.dir, fmt.Sprintf("%s_%s.csv", prefix, timestamp))
	jsonPath := filepath.Join(w.dir, fmt.Sprintf("%s_%s.json", prefix, timestamp))

	if err := WriteCommentsCSV(csvPath, comments); err != nil {
		return nil, err
	}
	if err := WriteCommentsJSON(jsonPath, comments); err != nil {
		return nil, err
	}

	slog.Info("saved comments", "count", len(comments), "csv", csvPath, "json", jsonPath)
	return []string{csvPath, jsonPath}, nil
}

// SaveRun writes one post file pair per subreddit plus a combined comment
// file pair, and returns every path written. Subreddits are processed in
// sorted order so output is stable across runs.
func (w *Writer) SaveRun(postsBySubreddit map[string][]models.Post, comments []models.Comment) ([]string, error) {
	subreddits := make([]string, 0, len(postsBySubreddit))
	for subreddit := range postsBySubreddit {
		subreddits = append(subreddits, subreddit)
	}
	sort.Strings(subreddits)

	var files []string
	for _, subreddit := range subreddits {
		paths, err := w.SavePosts(subreddit, postsBySubreddit[subreddit])
		if err != nil {
			return files, err
		}
		files = append(files, paths...)
	}

	if len(comments) > 0 {
		paths, err := w.SaveComments("comments", comments)
		if err != nil {
			return files, err
		}
		files = append(files, paths...)
	}

	return files, nil
}

func WritePostsCSV(path string, posts []models.Post) error {
	file, err := createFile(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&posts, file); err != nil {
		return fmt.Errorf("writing csv %s: %w", path, err)
	}
	return nil
}

func WritePostsJSON(path string, posts []models.Post) error {
	return writeJSON(path, posts)
}

func WriteCommentsCSV(path string, comments []models.Comment) error {
	file, err := createFile(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&comments, file); err != nil {
		return fmt.Errorf("writing csv %s: %w", path, err)
	}
	return nil
}

func WriteCommentsJSON(path string, comments []models.Comment) error {
	return writeJSON(path, comments)
}

func writeJSON(path string, records interface{}) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json for %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func createFile(path string) (*os.File, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return file, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}
