package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-money-keeper/internal/service"
)

// renderConflict shows the either/or choice when both the device and the
// cloud hold data and they differ.
func renderConflict(info service.ConflictInfo) string {
	var b strings.Builder

	b.WriteString("Данные в облаке отличаются от данных на устройстве.\n\n")
	b.WriteString(fmt.Sprintf("На устройстве: %d операций, %d инвестиций\n",
		info.LocalTransactions, info.LocalInvestments))
	b.WriteString(fmt.Sprintf("В облаке:      %d операций, %d инвестиций\n",
		info.RemoteTransactions, info.RemoteInvestments))
	if info.RemoteLastSync != nil {
		b.WriteString("Облако обновлено: " + info.RemoteLastSync.Local().Format("02.01.2006 15:04:05") + "\n")
	}
	b.WriteString("\n")
	b.WriteString("c: взять из облака    l: оставить локальные    esc: отмена")

	return overlayBoxStyle.Render(b.String())
}
