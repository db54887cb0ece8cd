// Package cli is the interactive front end: a read-eval-print loop over
// the crew, briefing, document, incident, and notification features.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/khanhtv/traincrew/internal/common"
	"github.com/khanhtv/traincrew/internal/config"
	"github.com/khanhtv/traincrew/internal/datauri"
	"github.com/khanhtv/traincrew/internal/logging"
	"github.com/khanhtv/traincrew/internal/notify"
	"github.com/khanhtv/traincrew/internal/records"
	"github.com/khanhtv/traincrew/internal/recordstore"
	"github.com/khanhtv/traincrew/internal/services"
	"github.com/khanhtv/traincrew/internal/storage"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	crew      *services.CrewService
	briefings *services.BriefingService
	documents *services.DocumentService
	incidents *services.IncidentService
	notices   *notify.Log
	opener    *datauri.Opener

	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := os.MkdirAll(c.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := storage.Open(ctx, filepath.Join(c.DataDir, c.DatabaseFile))
	if err != nil {
		return nil, err
	}
	st := storage.NewSQLiteStorage(db, c.QuotaBytes)

	crewStore := recordstore.New[records.CrewMember](records.NamespaceCrew, st, logger)
	briefingStore := recordstore.New[records.BriefingRecord](records.NamespaceBriefings, st, logger)
	generalStore := recordstore.New[records.DocumentItem](records.NamespaceGeneralDocs, st, logger)
	couplingStore := recordstore.New[records.DocumentItem](records.NamespaceCouplingDocs, st, logger)
	incidentStore := recordstore.New[records.IncidentRecord](records.NamespaceIncidents, st, logger)
	notices := notify.NewLog(st, logger)

	for _, load := range []func(context.Context) error{
		crewStore.Load, briefingStore.Load, generalStore.Load,
		couplingStore.Load, incidentStore.Load, notices.Load,
	} {
		if err := load(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &App{
		config:    c,
		logger:    logger,
		db:        db,
		crew:      services.NewCrewService(crewStore, logger, c.AvatarMaxWidth, c.AvatarQuality),
		briefings: services.NewBriefingService(briefingStore, notices, logger, c.PhotoMaxWidth, c.PhotoQuality),
		documents: services.NewDocumentService(generalStore, couplingStore, notices, logger),
		incidents: services.NewIncidentService(incidentStore, notices, logger, c.PhotoMaxWidth, c.PhotoQuality),
		notices:   notices,
		opener:    datauri.NewOpener(c.DataDir, c.PDFViewerCmd, c.ReleaseDelay, logger),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run handles a share URL passed on the command line, then enters the
// REPL. The loop exits on EOF or an exit command.
func (a *App) Run(ctx context.Context, args []string) {
	for _, arg := range args {
		a.OpenSharedURL(arg)
	}

	printlnFn("Train crew CLI (type 'help' for commands)")
	runREPL(ctx, a, a.statusLine, bufio.NewScanner(os.Stdin))
}

func (a *App) Close() error {
	return a.db.Close()
}

// statusLine is the unread-count badge shown in the prompt.
func (a *App) statusLine() string {
	if n := a.notices.UnreadCount(); n > 0 {
		return fmt.Sprintf("(%d)", n)
	}
	return ""
}

// printErr shows the user-facing message for a failed operation. A full
// storage quota gets its own advice instead of the raw error.
func (a *App) printErr(err error) {
	if errors.Is(err, common.ErrQuotaExceeded) {
		printlnFn("Bộ nhớ đã đầy. Hãy xóa bớt tệp đính kèm cũ.")
		return
	}
	printlnFn("Error:", err.Error())
}
