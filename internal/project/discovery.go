// pattern: Imperative Shell

package project

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"rustm/internal/logging"
	"rustm/internal/vcs"
)

// defaultWorkers bounds concurrent VCS inspections during a scan.
const defaultWorkers = 4

// Scanner discovers projects one level below the projects root.
type Scanner struct {
	inspector vcs.Inspector
	logger    *logging.ScopedLogger
	workers   int
}

// NewScanner creates a Scanner using the given inspector.
func NewScanner(inspector vcs.Inspector, logger *logging.ScopedLogger) *Scanner {
	return &Scanner{
		inspector: inspector,
		logger:    logger,
		workers:   defaultWorkers,
	}
}

// Scan lists immediate children of root and returns one Project per
// directory containing the manifest marker, sorted case-insensitively by
// name. Only an unreadable root is fatal; every per-project failure
// degrades to vcs.StatusUnknown. Two scans over an unchanged tree yield
// identical results.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Project, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &RootError{Path: root, Err: err}
	}

	var projects []Project
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if !hasManifest(path) {
			continue
		}
		projects = append(projects, Project{
			Name: entry.Name(),
			Path: path,
		})
	}

	s.inspectAll(ctx, projects)

	sort.Slice(projects, func(i, j int) bool {
		return strings.ToLower(projects[i].Name) < strings.ToLower(projects[j].Name)
	})

	s.logger.Info("scan complete", "root", root, "projects", len(projects))
	return projects, nil
}

// inspectAll fills in each project's status on a bounded worker pool.
// Inspections are independent and failure-isolated, so order of execution
// does not matter; callers rely on the sort afterwards.
func (s *Scanner) inspectAll(ctx context.Context, projects []Project) {
	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup

	for i := range projects {
		wg.Add(1)
		go func(p *Project) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			p.Status = s.inspector.Inspect(ctx, p.Path)
		}(&projects[i])
	}

	wg.Wait()
}

// hasManifest reports whether dir directly contains the manifest marker as
// a regular file.
func hasManifest(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ManifestName))
	return err == nil && info.Mode().IsRegular()
}
