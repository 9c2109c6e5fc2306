package assignment

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    ClockTime
		wantErr bool
	}{
		{name: "morning", input: "09:00", want: 540},
		{name: "midnight", input: "00:00", want: 0},
		{name: "end of day", input: "23:59", want: 1439},
		{name: "half hour", input: "12:30", want: 750},
		{name: "missing minutes", input: "09", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "not a time", input: "morning", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseClockTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockTimeJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ClockTime(750))
	require.NoError(t, err)
	assert.Equal(t, `"12:30"`, string(data))

	var c ClockTime
	require.NoError(t, json.Unmarshal([]byte(`"09:15"`), &c))
	assert.Equal(t, ClockTime(555), c)

	assert.Error(t, json.Unmarshal([]byte(`"9am"`), &c))
}

func TestTimeSlotHours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		slot TimeSlot
		want float64
	}{
		{name: "normal", slot: TimeSlot{Start: 540, End: 750}, want: 3.5},
		{name: "reversed is zero", slot: TimeSlot{Start: 750, End: 540}, want: 0},
		{name: "empty is zero", slot: TimeSlot{Start: 540, End: 540}, want: 0},
		{name: "full day", slot: TimeSlot{Start: 0, End: 1440}, want: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.slot.Hours())
		})
	}
}

func TestTimeSlotOverlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b TimeSlot
		want bool
	}{
		{name: "overlapping", a: TimeSlot{Start: 540, End: 660}, b: TimeSlot{Start: 600, End: 720}, want: true},
		{name: "touching does not overlap", a: TimeSlot{Start: 540, End: 660}, b: TimeSlot{Start: 660, End: 780}, want: false},
		{name: "disjoint", a: TimeSlot{Start: 540, End: 600}, b: TimeSlot{Start: 720, End: 780}, want: false},
		{name: "contained", a: TimeSlot{Start: 540, End: 780}, b: TimeSlot{Start: 600, End: 660}, want: true},
		{name: "identical", a: TimeSlot{Start: 540, End: 660}, b: TimeSlot{Start: 540, End: 660}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	t.Parallel()

	// December 2024: the 1st is a Sunday.
	assert.Equal(t, Sunday, WeekdayOf(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Monday, WeekdayOf(time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Saturday, WeekdayOf(time.Date(2024, 12, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Wednesday, WeekdayOf(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)))
}

func TestSlotInputUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    TimeSlot
		wantErr bool
	}{
		{name: "legacy string", input: `"09:00-12:30"`, want: TimeSlot{Start: 540, End: 750}},
		{name: "legacy string with spaces", input: `"09:00 - 12:30"`, want: TimeSlot{Start: 540, End: 750}},
		{name: "object form", input: `{"start":"09:00","end":"12:30"}`, want: TimeSlot{Start: 540, End: 750}},
		{name: "string missing dash", input: `"09:00"`, wantErr: true},
		{name: "bad start in string", input: `"9am-12:30"`, wantErr: true},
		{name: "bad object", input: `{"start":"nope","end":"12:30"}`, wantErr: true},
		{name: "number", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var s SlotInput
			err := json.Unmarshal([]byte(tt.input), &s)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Slot)
		})
	}
}

func TestScheduleInputNormalize(t *testing.T) {
	t.Parallel()

	t.Run("mixed formats", func(t *testing.T) {
		t.Parallel()
		var in ScheduleInput
		raw := `{"1":["09:00-12:30"],"6":[{"start":"10:00","end":"12:00"}]}`
		require.NoError(t, json.Unmarshal([]byte(raw), &in))

		schedule, err := in.Normalize()
		require.NoError(t, err)
		assert.Equal(t, Schedule{
			Monday:   {{Start: 540, End: 750}},
			Saturday: {{Start: 600, End: 720}},
		}, schedule)
	})

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()
		schedule, err := ScheduleInput(nil).Normalize()
		require.NoError(t, err)
		assert.Empty(t, schedule)
	})

	t.Run("empty day dropped", func(t *testing.T) {
		t.Parallel()
		in := ScheduleInput{"3": nil}
		schedule, err := in.Normalize()
		require.NoError(t, err)
		assert.NotContains(t, schedule, Wednesday)
	})

	t.Run("invalid weekday key", func(t *testing.T) {
		t.Parallel()
		for _, key := range []string{"0", "8", "monday", ""} {
			in := ScheduleInput{key: []SlotInput{{Slot: TimeSlot{Start: 540, End: 600}}}}
			_, err := in.Normalize()
			assert.Error(t, err, "key %q", key)
		}
	})
}
