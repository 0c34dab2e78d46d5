package chain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"supplychain/internal/domain"
)

// ErrArtifactNotFound is returned when no artifact file exists for a contract name.
var ErrArtifactNotFound = errors.New("artifact not found")

// hardhatArtifact is the subset of a Hardhat artifact file we read.
type hardhatArtifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

// FileArtifacts loads compiled contracts from a Hardhat artifacts directory.
type FileArtifacts struct {
	Dir string
}

// NewFileArtifacts returns a source rooted at dir (usually ./artifacts).
func NewFileArtifacts(dir string) *FileArtifacts { return &FileArtifacts{Dir: dir} }

// LoadArtifact resolves name to <dir>/contracts/<name>.sol/<name>.json, falling
// back to the first <name>.json found anywhere below dir.
func (a *FileArtifacts) LoadArtifact(name string) (domain.Artifact, error) {
	path, err := a.find(name)
	if err != nil {
		return domain.Artifact{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Artifact{}, err
	}
	return decodeArtifact(name, b)
}

func (a *FileArtifacts) find(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty contract name", ErrArtifactNotFound)
	}
	direct := filepath.Join(a.Dir, "contracts", name+".sol", name+".json")
	if _, err := os.Stat(direct); err == nil {
		return direct, nil
	}

	want := name + ".json"
	var found string
	err := filepath.WalkDir(a.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		// build-info holds compiler input/output, never contract artifacts.
		if d.IsDir() && d.Name() == "build-info" {
			return filepath.SkipDir
		}
		if !d.IsDir() && d.Name() == want {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("%w: %s under %s", ErrArtifactNotFound, name, a.Dir)
	}
	return found, nil
}

func decodeArtifact(name string, b []byte) (domain.Artifact, error) {
	var raw hardhatArtifact
	if err := json.Unmarshal(b, &raw); err != nil {
		return domain.Artifact{}, fmt.Errorf("decode %s artifact: %w", name, err)
	}
	parsed, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("parse %s abi: %w", name, err)
	}
	code, err := hexutil.Decode(raw.Bytecode)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("decode %s bytecode: %w", name, err)
	}
	if raw.ContractName != "" {
		name = raw.ContractName
	}
	return domain.Artifact{Name: name, ABI: parsed, Bytecode: code}, nil
}

var _ domain.ArtifactSource = (*FileArtifacts)(nil)
