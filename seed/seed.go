/*
Package seed loads and validates the static seed data: the employee
roster, starting balances, and the holiday calendar.

PURPOSE:
  Seed data is configuration, not derived state. It is parsed and fully
  validated before the server starts serving; a malformed entry is a
  ConfigurationError and fatal at startup, never a runtime error.

FILE FORMAT (YAML):
  employees:
    - id: E001
      name: Amit
      balance: 12
  holidays:
    - date: "2025-08-15"
      name: Independence Day

Without a file the built-in defaults apply.
*/
package seed

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/joyamit/leave-manager/leave"
)

// ConfigurationError reports malformed static seed data. Startup-only.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid seed data (%s): %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// =============================================================================
// SEED SCHEMA
// =============================================================================

type Config struct {
	Employees []EmployeeSeed `yaml:"employees"`
	Holidays  []HolidaySeed  `yaml:"holidays"`
}

type EmployeeSeed struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Balance int    `yaml:"balance"`
}

type HolidaySeed struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

// Default returns the built-in seed set.
func Default() Config {
	return Config{
		Employees: []EmployeeSeed{
			{ID: "E001", Name: "Amit", Balance: 12},
			{ID: "E002", Name: "Sneha", Balance: 8},
			{ID: "E003", Name: "Rahul", Balance: 15},
		},
		Holidays: []HolidaySeed{
			{Date: "2025-08-15", Name: "Independence Day"},
			{Date: "2025-10-02", Name: "Gandhi Jayanti"},
			{Date: "2025-12-25", Name: "Christmas"},
		},
	}
}

// Load reads a YAML seed file.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading seed file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, &ConfigurationError{Field: "yaml", Err: err}
	}
	return cfg, nil
}

// =============================================================================
// VALIDATION AND BUILD
// =============================================================================

// Build validates the seed data and produces the runtime directory,
// calendar, and starting balances.
func (c Config) Build() (*leave.Directory, *leave.Calendar, map[leave.EmployeeID]decimal.Decimal, error) {
	if len(c.Employees) == 0 {
		return nil, nil, nil, &ConfigurationError{Field: "employees", Err: fmt.Errorf("empty roster")}
	}

	seen := make(map[string]bool, len(c.Employees))
	employees := make([]leave.Employee, 0, len(c.Employees))
	balances := make(map[leave.EmployeeID]decimal.Decimal, len(c.Employees))
	for i, e := range c.Employees {
		if e.ID == "" {
			return nil, nil, nil, &ConfigurationError{
				Field: fmt.Sprintf("employees[%d].id", i), Err: fmt.Errorf("empty id"),
			}
		}
		if seen[e.ID] {
			return nil, nil, nil, &ConfigurationError{
				Field: fmt.Sprintf("employees[%d].id", i), Err: fmt.Errorf("duplicate id %q", e.ID),
			}
		}
		if e.Balance < 0 {
			return nil, nil, nil, &ConfigurationError{
				Field: fmt.Sprintf("employees[%d].balance", i), Err: fmt.Errorf("negative balance %d", e.Balance),
			}
		}
		seen[e.ID] = true
		id := leave.EmployeeID(e.ID)
		employees = append(employees, leave.Employee{ID: id, Name: e.Name})
		balances[id] = decimal.NewFromInt(int64(e.Balance))
	}

	holidays := make([]leave.Holiday, 0, len(c.Holidays))
	for i, h := range c.Holidays {
		d, err := leave.ParseDate(h.Date)
		if err != nil {
			return nil, nil, nil, &ConfigurationError{
				Field: fmt.Sprintf("holidays[%d].date", i), Err: err,
			}
		}
		holidays = append(holidays, leave.Holiday{Date: d, Name: h.Name})
	}

	return leave.NewDirectory(employees), leave.NewCalendar(holidays), balances, nil
}
