package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/core/ports"
	"github.com/olusolaa/metadata-drift-detector/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type format struct {
	name       string
	compressed bool
}

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// formatFor picks the decoder from the file extension; a trailing .gz marks
// gzip compression of the inner format.
func formatFor(path string) (format, error) {
	name := strings.ToLower(path)
	f := format{}
	if strings.HasSuffix(name, ".gz") {
		f.compressed = true
		name = strings.TrimSuffix(name, ".gz")
	}

	switch filepath.Ext(name) {
	case ".json":
		f.name = formatJSON
	case ".yaml", ".yml":
		f.name = formatYAML
	default:
		return f, errors.NewUserFacing(errors.CodeUnsupportedSnapshot,
			fmt.Sprintf("unsupported snapshot file %q", filepath.Base(path)),
			"Use a .json, .yaml or .yml file, optionally gzip compressed with a .gz suffix.")
	}
	return f, nil
}

type snapshotParser struct {
	filePath string
	cache    *domain.Snapshot
	parseErr error
	mutex    sync.RWMutex
	logger   ports.Logger
}

func newSnapshotParser(path string, logger ports.Logger) *snapshotParser {
	return &snapshotParser{
		filePath: path,
		logger:   logger.WithFields(map[string]any{"component": "snapshot_parser"}),
	}
}

func (sp *snapshotParser) parseAndCache(ctx context.Context) (*domain.Snapshot, error) {
	sp.mutex.RLock()
	if sp.cache != nil || sp.parseErr != nil {
		defer sp.mutex.RUnlock()
		return sp.cache, sp.parseErr
	}
	sp.mutex.RUnlock()

	sp.mutex.Lock()
	defer sp.mutex.Unlock()

	if sp.cache != nil || sp.parseErr != nil {
		return sp.cache, sp.parseErr
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	snap, err := sp.parse()
	if err != nil {
		sp.parseErr = err
		return nil, err
	}
	sp.logger.Debugf(ctx, "Parsed snapshot %q (%d modules, %d fields, %d values lists)",
		snap.EnvironmentName, len(snap.Modules), len(snap.Fields), len(snap.ValuesLists))
	sp.cache = snap
	return snap, nil
}

func (sp *snapshotParser) parse() (*domain.Snapshot, error) {
	f, err := formatFor(sp.filePath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(sp.filePath)
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeSnapshotReadError,
			fmt.Sprintf("failed to read snapshot file %s", sp.filePath), "Check the path and file permissions.")
	}

	if f.compressed {
		raw, err = gunzip(raw)
		if err != nil {
			return nil, errors.WrapUserFacing(err, errors.CodeSnapshotParseError,
				fmt.Sprintf("snapshot file %s is not valid gzip", sp.filePath), "")
		}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.NewUserFacing(errors.CodeSnapshotParseError,
			fmt.Sprintf("snapshot file %s is empty", sp.filePath), "Export the environment again.")
	}

	var snap domain.Snapshot
	switch f.name {
	case formatJSON:
		err = json.Unmarshal(raw, &snap)
	case formatYAML:
		err = yaml.Unmarshal(raw, &snap)
	}
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeSnapshotParseError,
			fmt.Sprintf("invalid %s in snapshot file %s", strings.ToUpper(f.name), sp.filePath), "")
	}
	return &snap, nil
}

func gunzip(raw []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
