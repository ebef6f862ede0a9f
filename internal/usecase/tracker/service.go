package tracker

import (
	"io"
	"time"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/ports"
)

// WatermarkPolicy controls whether a channel's watermark advances after a
// run with failures.
type WatermarkPolicy string

const (
	// WatermarkAlways advances to the captured now unconditionally, so
	// failed work inside the window is never retried.
	WatermarkAlways WatermarkPolicy = "always"
	// WatermarkOnFailuresHold keeps the old watermark when the scan failed
	// or a video hit a non-duplicate persistence error, so the next run
	// re-covers the window.
	WatermarkOnFailuresHold WatermarkPolicy = "on-failures-hold"
)

// Deps are the collaborators of the tracker service. Catalog, Transcripts
// and Translator may be nil for read-only use; the run methods check them.
type Deps struct {
	Repo        ports.IngestionRepository
	Watermarks  ports.WatermarkStore
	UoW         ports.UnitOfWork
	Catalog     ports.VideoCatalog
	Transcripts ports.TranscriptSource
	Translator  ports.Translator
}

type Config struct {
	PageSize           int64
	TranscriptLanguage string
	TranslateSource    string
	TranslateTarget    string
	BatchSize          int
	DefaultWindow      time.Duration
	Policy             WatermarkPolicy
	Location           *time.Location
	Progress           io.Writer
}

// Service drives the per-channel ingestion pipeline: window computation,
// catalog scan, batched transcript translation, analytics derivation and
// transactional persistence. Strictly sequential, single writer.
type Service struct {
	repo        ports.IngestionRepository
	watermarks  ports.WatermarkStore
	uow         ports.UnitOfWork
	catalog     ports.VideoCatalog
	transcripts ports.TranscriptSource
	translator  ports.Translator

	cfg Config
	now func() time.Time
}

func NewService(deps Deps, cfg Config) *Service {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.DefaultWindow <= 0 {
		cfg.DefaultWindow = 24 * time.Hour
	}
	if cfg.Policy == "" {
		cfg.Policy = WatermarkAlways
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Progress == nil {
		cfg.Progress = io.Discard
	}

	return &Service{
		repo:        deps.Repo,
		watermarks:  deps.Watermarks,
		uow:         deps.UoW,
		catalog:     deps.Catalog,
		transcripts: deps.Transcripts,
		translator:  deps.Translator,
		cfg:         cfg,
		now:         time.Now,
	}
}
