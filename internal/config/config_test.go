package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewFlagsAndEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := New([]string{"-a", ":9000", "-driver", "memory"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RunAddress != ":9000" || cfg.DBDriver != DriverMemory {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("env should override the flag default, got %q", cfg.LogLevel)
	}
}

func TestNewRequiresURI(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("DB_DRIVER", "")

	if _, err := New([]string{"-driver", "postgres"}); err == nil {
		t.Fatal("expected error without DATABASE_URI")
	}
	if _, err := New([]string{"-driver", "mysql", "-d", "x"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestLoadBankConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadBankConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Agency != "0001" || !cfg.Limit.Equal(decimal.NewFromInt(500)) || cfg.MaxWithdrawals != 3 {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadBankConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "banco.yaml")
	if err := os.WriteFile(path, []byte("agencia: \"0042\"\nlimite: \"250.50\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BANCO_LIMITE_SAQUES", "5")

	cfg, err := LoadBankConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Agency != "0042" || !cfg.Limit.Equal(decimal.RequireFromString("250.50")) || cfg.MaxWithdrawals != 5 {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadBankConfigInvalidLimit(t *testing.T) {
	t.Setenv("BANCO_LIMITE", "abc")
	chdir(t, t.TempDir())
	if _, err := LoadBankConfig(""); err == nil {
		t.Fatal("expected error for invalid limite")
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
