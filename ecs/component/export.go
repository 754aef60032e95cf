package component

import "time"

type ExportPhase int

const (
	ExportIdle ExportPhase = iota
	ExportPreparing
	ExportCapturing
	ExportBursting
	ExportPackaging
	ExportRestoring
)

func (p ExportPhase) String() string {
	switch p {
	case ExportPreparing:
		return "preparing"
	case ExportCapturing:
		return "capturing"
	case ExportBursting:
		return "bursting"
	case ExportPackaging:
		return "packaging"
	case ExportRestoring:
		return "restoring"
	default:
		return "idle"
	}
}

type ArchiveEntry struct {
	Name string
	Data []byte
}

// ExportJob is the state of one export run.
type ExportJob struct {
	ID    string
	Phase ExportPhase

	Cards   []uint64
	Total   int
	Index   int
	Percent int

	FontsWaited bool
	SettleUntil time.Time

	Entries []ArchiveEntry

	SavedPath string
	Err       error

	Runs int
}

var ExportJobComponent = NewComponent[ExportJob]()

// ExportRequest asks the export system to start a run.
type ExportRequest struct{}

var ExportRequestComponent = NewComponent[ExportRequest]()
