package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load()

	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q, want 8080", c.AppPort)
	}
	if c.MaxOpenLoans != DefaultMaxOpenLoans {
		t.Fatalf("MaxOpenLoans = %d, want %d", c.MaxOpenLoans, DefaultMaxOpenLoans)
	}
	if c.LoanPeriodDays != DefaultLoanPeriodDays || c.PenaltyDays != DefaultPenaltyDays {
		t.Fatalf("period/penalty = %d/%d, want %d/%d",
			c.LoanPeriodDays, c.PenaltyDays, DefaultLoanPeriodDays, DefaultPenaltyDays)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOAN_LIMIT", "2")
	t.Setenv("LOAN_PERIOD_DAYS", "14")
	t.Setenv("MYSQL_DB", "circulation")

	c := Load()
	if c.MaxOpenLoans != 2 {
		t.Fatalf("MaxOpenLoans = %d, want 2", c.MaxOpenLoans)
	}
	if c.LoanPeriodDays != 14 {
		t.Fatalf("LoanPeriodDays = %d, want 14", c.LoanPeriodDays)
	}
	if c.MySQLDB != "circulation" {
		t.Fatalf("MySQLDB = %q, want circulation", c.MySQLDB)
	}
}

func TestValidate_Rejects(t *testing.T) {
	c := Load()

	c.MaxOpenLoans = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for LOAN_LIMIT = 0")
	}

	c = Load()
	c.MySQLPort = "not-a-port"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for invalid MYSQL_PORT")
	}
}

func TestMySQLDSN(t *testing.T) {
	c := Load()
	dsn := c.MySQLDSN()
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("DSN missing parseTime: %q", dsn)
	}
	if !strings.Contains(dsn, "@tcp(") {
		t.Fatalf("DSN missing tcp addr: %q", dsn)
	}
}
