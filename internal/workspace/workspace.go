// Package workspace hands out scoped scratch directories. Every directory
// lives under a single root and is removed by Close regardless of what the
// caller left inside.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-file-keeper/internal/utils"
)

// Provider creates workspaces under Root.
type Provider struct {
	root string
	ids  *utils.UUIDGenerator
}

// NewProvider returns a Provider rooted at root. The root is created lazily
// on first Acquire.
func NewProvider(root string) *Provider {
	return &Provider{
		root: root,
		ids:  utils.NewUUIDGenerator(),
	}
}

// Root returns the directory all workspaces are created in.
func (p *Provider) Root() string {
	return p.root
}

// Acquire creates a fresh empty workspace. label is embedded in the
// directory name for debugging only.
func (p *Provider) Acquire(label string) (*Workspace, error) {
	if err := os.MkdirAll(p.root, 0o700); err != nil {
		return nil, fmt.Errorf("create workspace root: %w", err)
	}

	dir := filepath.Join(p.root, label+"-"+p.ids.Generate())
	if err := os.Mkdir(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	return &Workspace{dir: dir}, nil
}

// Workspace is a scoped directory owned by one operation.
type Workspace struct {
	dir string
}

// Dir returns the workspace directory.
func (w *Workspace) Dir() string {
	return w.dir
}

// Path joins elem onto the workspace directory.
func (w *Workspace) Path(elem ...string) string {
	return filepath.Join(append([]string{w.dir}, elem...)...)
}

// Close removes the workspace and everything in it. It is safe to call more
// than once.
func (w *Workspace) Close() error {
	if err := os.RemoveAll(w.dir); err != nil {
		return fmt.Errorf("remove workspace: %w", err)
	}
	return nil
}
