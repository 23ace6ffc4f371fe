package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rpgo/retirement-savings/internal/domain"
	"github.com/rpgo/retirement-savings/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of projection input files and forms
type InputParser struct {
	// Now is used to derive the current age from a birth date.
	Now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Now: time.Now}
}

// LoadFromFile loads a projection input from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.ProjectionInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML input and validates it
func (ip *InputParser) Parse(data []byte) (*domain.ProjectionInput, error) {
	var input domain.ProjectionInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput fills in the current age from the birth date when it is missing
// and then checks the input invariants.
func (ip *InputParser) ValidateInput(input *domain.ProjectionInput) error {
	if input.CurrentAge == 0 && input.BirthDate != nil {
		now := time.Now
		if ip.Now != nil {
			now = ip.Now
		}
		input.CurrentAge = dateutil.Age(*input.BirthDate, now())
	}
	return input.Validate()
}

// Form field names accepted by ParseForm.
const (
	fieldCurrentAge           = "currentAge"
	fieldRetirementAge        = "retirementAge"
	fieldRetirementAgeAlias   = "retirementAgeInput"
	fieldLifeExpectancy       = "lifeExpectancy"
	fieldCurrentSavings       = "currentSavings"
	fieldMonthlyContribution  = "monthlyContribution"
	fieldMonthlyExpense       = "monthlyExpense"
	fieldPreRetirementReturn  = "preRetirementReturn"
	fieldPostRetirementReturn = "postRetirementReturn"
	fieldAnnualInflation      = "annualInflation"
	fieldAnnualIncomeIncrease = "annualIncomeIncrease"
	fieldBirthDate            = "birthDate"
)

// ParseForm builds an input from string form fields such as "$30,000" or "6%".
// A missing or non-numeric field is reported as domain.ErrInvalidInput naming the field.
func (ip *InputParser) ParseForm(fields map[string]string) (*domain.ProjectionInput, error) {
	var (
		input domain.ProjectionInput
		err   error
	)

	if raw := strings.TrimSpace(fields[fieldBirthDate]); raw != "" {
		birth, perr := time.Parse("2006-01-02", raw)
		if perr != nil {
			return nil, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", domain.ErrInvalidInput, fieldBirthDate)
		}
		input.BirthDate = &birth
	}

	if input.BirthDate == nil || strings.TrimSpace(fields[fieldCurrentAge]) != "" {
		if input.CurrentAge, err = formAge(fields, fieldCurrentAge); err != nil {
			return nil, err
		}
	}

	retirementKey := fieldRetirementAge
	if strings.TrimSpace(fields[retirementKey]) == "" {
		retirementKey = fieldRetirementAgeAlias
	}
	if input.RetirementAge, err = formAge(fields, retirementKey); err != nil {
		return nil, err
	}
	if input.LifeExpectancy, err = formAge(fields, fieldLifeExpectancy); err != nil {
		return nil, err
	}

	amounts := []struct {
		field string
		dest  *decimal.Decimal
	}{
		{fieldCurrentSavings, &input.CurrentSavings},
		{fieldMonthlyContribution, &input.MonthlyContribution},
		{fieldMonthlyExpense, &input.MonthlyExpense},
		{fieldPreRetirementReturn, &input.PreRetirementReturn},
		{fieldPostRetirementReturn, &input.PostRetirementReturn},
		{fieldAnnualInflation, &input.AnnualInflation},
		{fieldAnnualIncomeIncrease, &input.AnnualIncomeIncrease},
	}
	for _, a := range amounts {
		if *a.dest, err = formAmount(fields, a.field); err != nil {
			return nil, err
		}
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, err
	}
	return &input, nil
}

var amountReplacer = strings.NewReplacer("$", "", ",", "", "%", "", " ", "", "\t", "")

func formAmount(fields map[string]string, name string) (decimal.Decimal, error) {
	raw := amountReplacer.Replace(strings.TrimSpace(fields[name]))
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, name)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a number, got %q", domain.ErrInvalidInput, name, fields[name])
	}
	return d, nil
}

func formAge(fields map[string]string, name string) (int, error) {
	raw := strings.TrimSpace(fields[name])
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, name)
	}
	age, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number of years, got %q", domain.ErrInvalidInput, name, raw)
	}
	return age, nil
}

// CreateExampleInput creates an example input using the web form's defaults
func (ip *InputParser) CreateExampleInput() *domain.ProjectionInput {
	return &domain.ProjectionInput{
		CurrentAge:           35,
		RetirementAge:        67,
		LifeExpectancy:       95,
		CurrentSavings:       decimal.NewFromInt(30000),
		MonthlyContribution:  decimal.NewFromInt(500),
		MonthlyExpense:       decimal.NewFromInt(3000),
		PreRetirementReturn:  decimal.NewFromInt(6),
		PostRetirementReturn: decimal.NewFromInt(5),
		AnnualInflation:      decimal.NewFromInt(3),
		AnnualIncomeIncrease: decimal.NewFromInt(2),
	}
}

// SaveInput writes an input to a YAML file
func (ip *InputParser) SaveInput(input *domain.ProjectionInput, filename string) error {
	data, err := yaml.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}

	return nil
}
