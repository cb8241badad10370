// seehuhn.de/go/render3d - a software 3D rendering pipeline
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package render3d

import (
	"log/slog"

	"seehuhn.de/go/render3d/internal/logging"
)

// SetLogger configures the logger for render3d and all its sub-packages.
// By default no log output is produced.  Pass nil to restore the silent
// default.  SetLogger is safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: skipped triangles and per-frame counts
//   - [slog.LevelInfo]: mesh files loaded
//   - [slog.LevelWarn]: recoverable failures, e.g. a mesh replaced by an empty one
//
// Example:
//
//	render3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logging.Logger()
}
