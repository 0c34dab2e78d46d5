package chain_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"supplychain/internal/chain"
)

const routerArtifact = `{
  "_format": "hh-sol-artifact-1",
  "contractName": "SupplyChain",
  "sourceName": "contracts/SupplyChain.sol",
  "abi": [
    {"type": "constructor", "stateMutability": "nonpayable",
     "inputs": [{"name": "users", "type": "address"}, {"name": "products", "type": "address"}]}
  ],
  "bytecode": "0x600a600c600039600a6000f3602a60005260206000f3",
  "deployedBytecode": "0x602a60005260206000f3"
}`

func writeArtifact(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestFileArtifacts_HardhatLayout(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, filepath.Join(dir, "contracts", "SupplyChain.sol", "SupplyChain.json"), routerArtifact)

	art, err := chain.NewFileArtifacts(dir).LoadArtifact("SupplyChain")
	if err != nil {
		t.Fatalf("LoadArtifact: %v", err)
	}
	if art.Name != "SupplyChain" {
		t.Fatalf("name = %q", art.Name)
	}
	if got := len(art.ABI.Constructor.Inputs); got != 2 {
		t.Fatalf("constructor inputs = %d, want 2", got)
	}
	if len(art.Bytecode) != 22 {
		t.Fatalf("bytecode length = %d, want 22", len(art.Bytecode))
	}
}

func TestFileArtifacts_FallbackSearch(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, filepath.Join(dir, "build-info", "SupplyChain.json"), `{"not": "an artifact"}`)
	writeArtifact(t, filepath.Join(dir, "nested", "registry", "SupplyChain.json"), routerArtifact)

	art, err := chain.NewFileArtifacts(dir).LoadArtifact("SupplyChain")
	if err != nil {
		t.Fatalf("LoadArtifact: %v", err)
	}
	if len(art.Bytecode) == 0 {
		t.Fatal("expected bytecode from nested artifact")
	}
}

func TestFileArtifacts_Missing(t *testing.T) {
	_, err := chain.NewFileArtifacts(t.TempDir()).LoadArtifact("UsersContract")
	if !errors.Is(err, chain.ErrArtifactNotFound) {
		t.Fatalf("want ErrArtifactNotFound, got %v", err)
	}
}

func TestFileArtifacts_BadBytecode(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, filepath.Join(dir, "contracts", "Broken.sol", "Broken.json"),
		`{"contractName": "Broken", "abi": [], "bytecode": "zz"}`)

	if _, err := chain.NewFileArtifacts(dir).LoadArtifact("Broken"); err == nil {
		t.Fatal("expected bytecode decode error")
	}
}
