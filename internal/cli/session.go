package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	slogcontext "github.com/veqryn/slog-context"

	"github.com/agentx-labs/seltrack/internal/config"
	"github.com/agentx-labs/seltrack/internal/host"
	"github.com/agentx-labs/seltrack/internal/host/offline"
	"github.com/agentx-labs/seltrack/internal/registry"
)

// session is the persisted registry opened against a detached host.
type session struct {
	reg  *registry.Registry
	host host.Host
	path string
}

// openSession loads the configured state file. A missing file yields an
// empty registry.
func openSession(cmd *cobra.Command) (*session, error) {
	path, err := config.StatePath()
	if err != nil {
		return nil, fmt.Errorf("resolving state path: %w", err)
	}

	s := &session{
		reg:  registry.New(),
		host: offline.New(config.ProjectDir()),
		path: path,
	}
	if err := s.reg.Load(cmd.Context(), path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		slogcontext.FromCtx(cmd.Context()).Debug("no state file yet", "path", path)
	}
	return s, nil
}

func (s *session) save(cmd *cobra.Command) error {
	return s.reg.Save(cmd.Context(), s.path)
}
