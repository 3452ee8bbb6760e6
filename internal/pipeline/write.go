package pipeline

import (
	"os"
	"strings"

	"github.com/natefinch/atomic"

	derrors "git.home.luguber.info/inful/llmsdocs/internal/errors"
)

const filePerms = 0o644

// writeFile replaces path atomically so readers never see a partial page.
func writeFile(path, content string) error {
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return derrors.WriteFailed(path, err)
	}
	// atomic.WriteFile creates new files 0600.
	if err := os.Chmod(path, filePerms); err != nil {
		return derrors.WriteFailed(path, err)
	}
	return nil
}
