package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

// ID is a client-assigned identifier, either a JSON string or a number.
// Clients control identity, so the raw value is round-tripped unchanged.
type ID struct {
	raw json.RawMessage
}

func (id *ID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		id.raw = nil
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		id.raw = append(json.RawMessage(nil), trimmed...)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return errors.New("id must be a string or a number")
	}
	id.raw = append(json.RawMessage(nil), trimmed...)
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	if len(id.raw) == 0 {
		return []byte("null"), nil
	}
	return id.raw, nil
}

func (id ID) IsEmpty() bool {
	return len(id.raw) == 0 || bytes.Equal(id.raw, []byte(`""`))
}

func (id ID) String() string {
	if len(id.raw) == 0 {
		return ""
	}
	if id.raw[0] == '"' {
		var s string
		_ = json.Unmarshal(id.raw, &s)
		return s
	}
	return string(id.raw)
}

type Exercise struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Muscle    string `json:"muscle,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type WorkoutSet struct {
	Reps   *float64 `json:"reps"`
	Weight *float64 `json:"weight"`
}

type WorkoutLog struct {
	ID         ID           `json:"id"`
	ExerciseID ID           `json:"exercise_id"`
	Timestamp  string       `json:"timestamp"`
	Sets       []WorkoutSet `json:"sets"`
}

// Snapshot is the complete client-side workout state for one user at
// the time of backup.
type Snapshot struct {
	UserID     string       `json:"userId"`
	Exercises  []Exercise   `json:"exercises"`
	Logs       []WorkoutLog `json:"logs"`
	LastSynced string       `json:"last_synced,omitempty"`
}

// Validate checks all required fields before anything touches the
// store; an invalid snapshot never results in a partial write.
func (s *Snapshot) Validate() error {
	if s.UserID == "" {
		return fmt.Errorf("%w: userId empty", ErrInvalidSnapshot)
	}
	if s.Exercises == nil {
		return fmt.Errorf("%w: exercises missing", ErrInvalidSnapshot)
	}
	if s.Logs == nil {
		return fmt.Errorf("%w: logs missing", ErrInvalidSnapshot)
	}

	for i, exercise := range s.Exercises {
		if exercise.ID.IsEmpty() {
			return fmt.Errorf("%w: exercise [%d]: id missing", ErrInvalidSnapshot, i)
		}
		if exercise.Name == "" {
			return fmt.Errorf("%w: exercise [%d]: name empty", ErrInvalidSnapshot, i)
		}
	}

	for i, workoutLog := range s.Logs {
		if workoutLog.ID.IsEmpty() {
			return fmt.Errorf("%w: log [%d]: id missing", ErrInvalidSnapshot, i)
		}
		if workoutLog.ExerciseID.IsEmpty() {
			return fmt.Errorf("%w: log [%d]: exercise_id missing", ErrInvalidSnapshot, i)
		}
		if workoutLog.Timestamp == "" {
			return fmt.Errorf("%w: log [%d]: timestamp empty", ErrInvalidSnapshot, i)
		}
		if workoutLog.Sets == nil {
			return fmt.Errorf("%w: log [%d]: sets missing", ErrInvalidSnapshot, i)
		}
		for j, set := range workoutLog.Sets {
			if set.Reps == nil {
				return fmt.Errorf("%w: log [%d] set [%d]: reps missing", ErrInvalidSnapshot, i, j)
			}
			if set.Weight == nil {
				return fmt.Errorf("%w: log [%d] set [%d]: weight missing", ErrInvalidSnapshot, i, j)
			}
			if *set.Reps < 0 || *set.Weight < 0 {
				return fmt.Errorf("%w: log [%d] set [%d]: reps and weight must be non-negative", ErrInvalidSnapshot, i, j)
			}
		}
	}

	return nil
}
