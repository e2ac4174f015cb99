package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateCronSchedule_Valid(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
	}{
		{"daily at midnight", "0 0 * * *"},
		{"daily at 5:30 AM", "30 5 * * *"},
		{"every 6 hours", "0 */6 * * *"},
		{"weekdays at 9:30", "30 9 * * 1-5"},
		{"first day of month", "0 0 1 * *"},
		{"every minute", "* * * * *"},
		{"every 5 minutes", "*/5 * * * *"},
		{"complex expression", "15,45 */2 * * 1,3,5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateCronSchedule(tt.schedule))
		})
	}
}

func TestValidateCronSchedule_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
	}{
		{"empty string", ""},
		{"too few fields", "0 0"},
		{"too many fields", "0 0 * * * * *"},
		{"invalid minute", "60 0 * * *"},
		{"invalid hour", "0 24 * * *"},
		{"invalid day", "0 0 32 * *"},
		{"invalid month", "0 0 * 13 *"},
		{"invalid weekday", "0 0 * * 8"},
		{"random text", "invalid format"},
		{"special characters", "@#$%^&*()"},
		{"negative values", "-1 0 * * *"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCronSchedule(tt.schedule)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid cron schedule")
		})
	}
}

func TestValidateCronSchedule_ErrorIncludesValue(t *testing.T) {
	err := ValidateCronSchedule("invalid")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cron schedule 'invalid'")
}

func TestValidateTimezone_Valid(t *testing.T) {
	timezones := []string{
		"UTC",
		"America/New_York",
		"America/Los_Angeles",
		"Europe/London",
		"Europe/Paris",
		"Asia/Tokyo",
		"Asia/Shanghai",
		"Australia/Sydney",
		"Local",
	}

	for _, tz := range timezones {
		t.Run(tz, func(t *testing.T) {
			assert.NoError(t, ValidateTimezone(tz))
		})
	}
}

func TestValidateTimezone_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
	}{
		{"empty string", ""},
		{"invalid name", "Invalid/Timezone"},
		{"not a timezone", "NotATimezone"},
		{"random text", "random text"},
		{"UTC offset instead of IANA name", "+09:00"},
		{"typo in name", "Aisa/Tokyo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimezone(tt.timezone)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid timezone")
		})
	}
}

func TestValidateTimezone_ErrorIncludesValue(t *testing.T) {
	err := ValidateTimezone("Invalid/Zone")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timezone 'Invalid/Zone'")
}

func TestValidateDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		min      time.Duration
		max      time.Duration
		valid    bool
	}{
		{"just below min", 9 * time.Second, 10 * time.Second, time.Minute, false},
		{"exactly min", 10 * time.Second, 10 * time.Second, time.Minute, true},
		{"middle of range", 30 * time.Second, 10 * time.Second, time.Minute, true},
		{"exactly max", time.Minute, 10 * time.Second, time.Minute, true},
		{"just above max", 61 * time.Second, 10 * time.Second, time.Minute, false},
		{"min equals max", 5 * time.Second, 5 * time.Second, 5 * time.Second, true},
		{"large values", 24 * time.Hour, time.Hour, 48 * time.Hour, true},
		{"nanoseconds", 500 * time.Nanosecond, 100 * time.Nanosecond, time.Microsecond, true},
		{"zero within range", 0, 0, 10 * time.Second, true},
		{"negative below negative min", -30 * time.Second, -10 * time.Second, 10 * time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDuration(tt.duration, tt.min, tt.max)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateDuration_BelowMin(t *testing.T) {
	err := ValidateDuration(5*time.Second, 10*time.Second, time.Minute)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "below minimum")
	assert.Contains(t, err.Error(), "5s")
	assert.Contains(t, err.Error(), "10s")
}

func TestValidateDuration_ExceedsMax(t *testing.T) {
	err := ValidateDuration(2*time.Minute, 10*time.Second, time.Minute)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
	assert.Contains(t, err.Error(), "2m")
	assert.Contains(t, err.Error(), "1m")
}

func TestValidateDuration_InvalidRange(t *testing.T) {
	err := ValidateDuration(30*time.Second, time.Minute, 10*time.Second)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid range")
	assert.Contains(t, err.Error(), "min")
	assert.Contains(t, err.Error(), "max")
}

func TestValidateIntRange(t *testing.T) {
	tests := []struct {
		name  string
		value int
		min   int
		max   int
		valid bool
	}{
		{"just below min", 0, 1, 10, false},
		{"exactly min", 1, 1, 10, true},
		{"middle of range", 5, 1, 10, true},
		{"exactly max", 10, 1, 10, true},
		{"just above max", 11, 1, 10, false},
		{"min equals max", 5, 5, 5, true},
		{"negative range", -5, -10, -1, true},
		{"zero in range", 0, -10, 10, true},
		{"negative below zero min", -1, 0, 10, false},
		{"max int", 2147483647, 0, 2147483647, true},
		{"min int", -2147483648, -2147483648, 0, true},
		{"one above int32 max bound", 2147483647, 0, 2147483646, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIntRange(tt.value, tt.min, tt.max)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateIntRange_BelowMin(t *testing.T) {
	err := ValidateIntRange(0, 1, 10)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "below minimum")
	assert.Contains(t, err.Error(), "0")
	assert.Contains(t, err.Error(), "1")
}

func TestValidateIntRange_ExceedsMax(t *testing.T) {
	err := ValidateIntRange(11, 1, 10)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
	assert.Contains(t, err.Error(), "11")
	assert.Contains(t, err.Error(), "10")
}

func TestValidateIntRange_InvalidRange(t *testing.T) {
	err := ValidateIntRange(5, 10, 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid range")
	assert.Contains(t, err.Error(), "min")
	assert.Contains(t, err.Error(), "max")
}

func TestValidatePositiveDuration_Valid(t *testing.T) {
	for _, d := range []time.Duration{
		time.Nanosecond,
		time.Microsecond,
		time.Millisecond,
		time.Second,
		time.Minute,
		time.Hour,
		24 * time.Hour,
		1000 * time.Hour,
	} {
		t.Run(d.String(), func(t *testing.T) {
			assert.NoError(t, ValidatePositiveDuration(d))
		})
	}
}

func TestValidatePositiveDuration_Invalid(t *testing.T) {
	for _, d := range []time.Duration{
		0,
		-time.Second,
		-time.Minute,
		-time.Hour,
		-1000 * time.Hour,
	} {
		t.Run(d.String(), func(t *testing.T) {
			err := ValidatePositiveDuration(d)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "must be positive")
		})
	}
}

func TestValidatePositiveDuration_ErrorIncludesValue(t *testing.T) {
	err := ValidatePositiveDuration(-30 * time.Minute)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duration must be positive")
	assert.Contains(t, err.Error(), "-30m")
}

// every validator echoes the offending value so startup warnings are actionable
func TestValidators_ErrorsIncludeValue(t *testing.T) {
	assert.Contains(t, ValidateCronSchedule("invalid").Error(), "invalid")
	assert.Contains(t, ValidateTimezone("Invalid/Zone").Error(), "Invalid/Zone")
	assert.Contains(t, ValidateDuration(5*time.Second, 10*time.Second, time.Minute).Error(), "5s")
	assert.Contains(t, ValidateIntRange(0, 1, 10).Error(), "0")
	assert.Contains(t, ValidatePositiveDuration(-5*time.Second).Error(), "-5s")
}

func TestValidators_NilOnSuccess(t *testing.T) {
	assert.Nil(t, ValidateCronSchedule("0 0 * * *"))
	assert.Nil(t, ValidateTimezone("UTC"))
	assert.Nil(t, ValidateDuration(30*time.Second, 10*time.Second, time.Minute))
	assert.Nil(t, ValidateIntRange(5, 1, 10))
	assert.Nil(t, ValidatePositiveDuration(30*time.Second))
}

func TestValidateCronSchedule_UnsupportedSyntax(t *testing.T) {
	// the standard five-field parser rejects Quartz-style extensions
	for _, schedule := range []string{
		"0 0 L * *",
		"0 0 1W * *",
		"0 0 * * MON#1",
		"@daily",
		"INVALID",
		"* * * *",
	} {
		t.Run(schedule, func(t *testing.T) {
			assert.Error(t, ValidateCronSchedule(schedule))
		})
	}
}
