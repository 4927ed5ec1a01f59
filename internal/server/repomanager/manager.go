// Package repomanager bundles the four entity repositories behind one
// manager so services and the CLI receive a single dependency.
package repomanager

import (
	"artcatalog/internal/server/repositories/artworks"
	"artcatalog/internal/server/repositories/categories"
	"artcatalog/internal/server/repositories/submissions"
	"artcatalog/internal/server/repositories/users"
	"artcatalog/internal/server/store"
)

type Manager interface {
	Users() users.Repository
	Artworks() artworks.Repository
	Submissions() submissions.Repository
	Categories() categories.Repository
}

// JSONFileManager wires every repository to one JSON-document store rooted
// at the data directory.
type JSONFileManager struct {
	users       *users.JSONFileRepository
	artworks    *artworks.JSONFileRepository
	submissions *submissions.JSONFileRepository
	categories  *categories.JSONFileRepository
}

func NewJSONFileManager(dataDir string) (*JSONFileManager, error) {
	s, err := store.New(dataDir)
	if err != nil {
		return nil, err
	}
	return &JSONFileManager{
		users:       users.NewJSONFileRepository(s),
		artworks:    artworks.NewJSONFileRepository(s),
		submissions: submissions.NewJSONFileRepository(s),
		categories:  categories.NewJSONFileRepository(s),
	}, nil
}

func (m *JSONFileManager) Users() users.Repository             { return m.users }
func (m *JSONFileManager) Artworks() artworks.Repository       { return m.artworks }
func (m *JSONFileManager) Submissions() submissions.Repository { return m.submissions }
func (m *JSONFileManager) Categories() categories.Repository   { return m.categories }

var _ Manager = (*JSONFileManager)(nil)
