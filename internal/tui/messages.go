package tui

import (
	"github.com/MKhiriev/go-money-keeper/models"
)

type syncDoneMsg struct {
	err error
}

type snapshotsLoadedMsg struct {
	snapshots []models.SnapshotInfo
	err       error
}

type rollbackDoneMsg struct {
	err error
}

type statusTickMsg struct{}
