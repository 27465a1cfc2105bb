package romaneio

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/tecadi/romaneio/pkg/romaneio/archive"
	"github.com/tecadi/romaneio/pkg/romaneio/fetch"
	"github.com/tecadi/romaneio/pkg/romaneio/models"
	"github.com/tecadi/romaneio/pkg/romaneio/pdf"
	"github.com/tecadi/romaneio/pkg/romaneio/sheet"
)

// ComposeFunc renders one manifest document. It matches pdf.Compose.
type ComposeFunc func(models.Manifest, pdf.Options) ([]byte, error)

// Session holds the application state of one generation workflow: the
// cached table from the last load, the last fetch error and the current
// row selection. A successful load replaces the cache and resets the
// error and selection; a failed load drops the cache. The underlying
// components stay stateless.
type Session struct {
	opts    Options
	fetcher *fetch.Client
	compose ComposeFunc
	log     *charmlog.Logger

	table    *models.Table
	fetchErr error
	selected map[string]bool
}

// NewSession creates a session with a default fetch client and composer.
func NewSession(opts Options) *Session {
	return &Session{
		opts:    opts,
		fetcher: fetch.New(),
		compose: pdf.Compose,
		log:     charmlog.New(io.Discard),
	}
}

// SetLogger replaces the session logger.
func (s *Session) SetLogger(l *charmlog.Logger) {
	s.log = l
}

// SetFetcher replaces the download client.
func (s *Session) SetFetcher(c *fetch.Client) {
	s.fetcher = c
}

// SetComposer replaces the document composer, mainly for tests.
func (s *Session) SetComposer(fn ComposeFunc) {
	s.compose = fn
}

// Refresh downloads the shared workbook and replaces the cached table.
// On failure the cache is dropped and the error recorded.
func (s *Session) Refresh(ctx context.Context, sharedURL string) error {
	data, err := s.fetcher.Download(ctx, sharedURL)
	if err != nil {
		s.table = nil
		s.fetchErr = err
		return err
	}
	return s.LoadBytes(data)
}

// LoadFile loads a local workbook instead of a remote one.
func (s *Session) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		s.table = nil
		s.fetchErr = err
		return err
	}
	return s.LoadBytes(data)
}

// LoadBytes normalizes raw workbook bytes into the cached table. Success
// clears the last error and the row selection.
func (s *Session) LoadBytes(data []byte) error {
	table, err := sheet.Load(data, s.opts.SheetName, s.opts.Mapping)
	if err != nil {
		s.table = nil
		s.fetchErr = err
		return err
	}
	s.table = table
	s.fetchErr = nil
	s.selected = nil
	s.log.Debug("table loaded", "columns", len(table.Columns), "rows", len(table.Rows))
	return nil
}

// Table returns the cached table, or nil when nothing is loaded.
func (s *Session) Table() *models.Table {
	return s.table
}

// Err returns the error of the last failed load, or nil.
func (s *Session) Err() error {
	return s.fetchErr
}

// Finalized returns the rows whose status matches the configured status.
func (s *Session) Finalized() []models.Record {
	if s.table == nil {
		return nil
	}
	col := s.opts.Mapping.StatusColumn
	if col == "" {
		col = models.ColStatus
	}
	want := strings.ToUpper(strings.TrimSpace(s.opts.Status))
	return s.table.Filter(func(r models.Record) bool {
		return r.Text(col) == want
	})
}

// Select restricts generation to the rows with the given selection keys.
// An empty call clears the restriction.
func (s *Session) Select(keys ...string) {
	if len(keys) == 0 {
		s.selected = nil
		return
	}
	s.selected = make(map[string]bool, len(keys))
	for _, k := range keys {
		s.selected[k] = true
	}
}

// batchRows returns the finalized rows narrowed by the selection, if any.
func (s *Session) batchRows() []models.Record {
	rows := s.Finalized()
	if s.selected == nil {
		return rows
	}
	var out []models.Record
	for _, r := range rows {
		if s.selected[r.Key()] {
			out = append(out, r)
		}
	}
	return out
}

// Generate renders one document per filtered row and returns the ZIP
// bundle. A single record's render failure is replaced by an error
// marker entry and never aborts the remaining records.
func (s *Session) Generate(reportDate time.Time) ([]byte, error) {
	if s.table == nil {
		return nil, ErrNoTable
	}
	if missing := s.table.MissingColumns(s.opts.RequiredColumns()); len(missing) > 0 {
		return nil, &BatchError{Missing: missing}
	}
	rows := s.batchRows()
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	entries := make([]archive.Entry, 0, len(rows))
	for i, rec := range rows {
		name := rec.OutputName()
		data, err := s.compose(models.ManifestFromRecord(rec, reportDate), pdf.Options{LogoPath: s.opts.LogoPath})
		if err != nil {
			rerr := &RenderError{Index: i, Name: name, Err: err}
			s.log.Warn("record render failed", "index", i, "name", name, "error", err)
			entries = append(entries, archive.Entry{
				Name: fmt.Sprintf("ERRO_%d.txt", i),
				Data: []byte(rerr.Error()),
			})
			continue
		}
		entries = append(entries, archive.Entry{Name: name, Data: data})
	}
	return archive.Build(entries)
}
