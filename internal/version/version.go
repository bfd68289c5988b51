// Package version описывает сборку сервиса. Значения проставляются линкером:
//
//	go build -ldflags "-X github.com/vladislavdragonenkov/wholesale-orders/internal/version.version=v1.2.0 \
//	  -X github.com/vladislavdragonenkov/wholesale-orders/internal/version.commit=$(git rev-parse --short HEAD)"
package version

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Build - сведения о текущем бинаре.
type Build struct {
	Version string
	Commit  string
	Date    string
}

// Current возвращает сведения, зашитые при сборке.
func Current() Build {
	return Build{Version: version, Commit: commit, Date: date}
}

// Release - только номер версии; его отдают health-эндпоинты.
func Release() string { return version }

// Dev сообщает, что бинарь собран без -ldflags.
func (b Build) Dev() bool { return b.Version == "dev" }

func (b Build) String() string {
	return fmt.Sprintf("%s (%s, %s)", b.Version, b.Commit, b.Date)
}

// Fields - поля для стартовой строки лога.
func (b Build) Fields() log.Fields {
	return log.Fields{
		"version": b.Version,
		"commit":  b.Commit,
		"built":   b.Date,
	}
}
