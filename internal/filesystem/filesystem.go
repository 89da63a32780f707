// Package filesystem lays out the application home directory.
package filesystem

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shaharia-lab/reskin/internal/config"
)

type PathType string

const (
	configYamlFileName = "config.yaml"
	historyDBFileName  = "history.db"

	AppDirectory     PathType = "app"
	CacheDirectory   PathType = "cache"
	ConfigDirectory  PathType = "config"
	ConfigFilePath   PathType = "config_file"
	LogsDirectory    PathType = "logs"
	LogsFilePath     PathType = "log_file"
	DataDirectory    PathType = "data"
	BundlesDirectory PathType = "bundles"
	HistoryDB        PathType = "history_db"
)

// Filesystem creates and reports the paths the application uses
type Filesystem struct {
	appCfg *config.AppConfig
	root   string
}

// NewAppFilesystem creates a Filesystem rooted at ~/.<app name>
func NewAppFilesystem(appCfg *config.AppConfig) *Filesystem {
	return &Filesystem{appCfg: appCfg}
}

// NewFilesystemAt creates a Filesystem rooted at dir instead of the home directory
func NewFilesystemAt(appCfg *config.AppConfig, dir string) *Filesystem {
	return &Filesystem{appCfg: appCfg, root: dir}
}

// EnsureAllPaths creates every directory and file the application expects and returns their locations
func (s *Filesystem) EnsureAllPaths() (map[PathType]string, error) {
	paths := map[PathType]string{}

	appDirectory, err := s.ensureAppDirectory()
	if err != nil {
		return paths, err
	}
	paths[AppDirectory] = appDirectory

	dirs := []struct {
		pathType PathType
		name     string
	}{
		{CacheDirectory, "cache"},
		{ConfigDirectory, "config"},
		{LogsDirectory, "logs"},
		{DataDirectory, "data"},
		{BundlesDirectory, "bundles"},
	}
	for _, d := range dirs {
		dir := filepath.Join(appDirectory, d.name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return paths, fmt.Errorf("failed to create %s directory: %w", d.name, err)
		}
		paths[d.pathType] = dir
	}

	historyDBFilePath, err := s.createSQLiteDBFile(paths[DataDirectory], historyDBFileName)
	if err != nil {
		return paths, err
	}
	paths[HistoryDB] = historyDBFilePath

	configFilePath := filepath.Join(paths[ConfigDirectory], configYamlFileName)
	if err := touch(configFilePath); err != nil {
		return paths, err
	}
	paths[ConfigFilePath] = configFilePath

	logFilePath := filepath.Join(paths[LogsDirectory], fmt.Sprintf("%s.log", strings.ToLower(s.appCfg.Name)))
	if err := touch(logFilePath); err != nil {
		return paths, err
	}
	paths[LogsFilePath] = logFilePath

	return paths, nil
}

func (s *Filesystem) ensureAppDirectory() (string, error) {
	root := s.root
	if root == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		root = homeDir
	}

	appDir := filepath.Join(root, fmt.Sprintf(".%s", strings.ToLower(s.appCfg.Name)))
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return appDir, nil
}

// createSQLiteDBFile creates an empty sqlite database unless one exists
func (s *Filesystem) createSQLiteDBFile(dataDirectory, fileName string) (string, error) {
	dbFilePath := filepath.Join(dataDirectory, fileName)
	if _, err := os.Stat(dbFilePath); err == nil {
		return dbFilePath, nil
	}

	if err := touch(dbFilePath); err != nil {
		return "", err
	}

	sqliteDB, err := sql.Open("sqlite3", dbFilePath)
	if err != nil {
		return "", err
	}
	defer sqliteDB.Close()

	if err := sqliteDB.Ping(); err != nil {
		return "", fmt.Errorf("failed to create sqlite database %s: %w", dbFilePath, err)
	}

	return dbFilePath, nil
}

func touch(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return f.Close()
}
