// Package prosody parses the inline prosody markup subset (break, emphasis,
// rate, pitch tags), strips it from the text, and emits per-word-index
// prosody hints.
package prosody

// Hint is a per-word prosody adjustment. Scales default to 1.0 and combine
// multiplicatively; offsets and silence default to 0 and combine additively.
type Hint struct {
	PitchScale           float64 `json:"pitch_scale"`
	DurationScale        float64 `json:"duration_scale"`
	PitchOffsetSemitones float64 `json:"pitch_offset_semitones"`
	InsertSilenceMs      int     `json:"insert_silence_ms"`
}

// Identity returns the neutral hint, which merges as a no-op.
func Identity() Hint {
	return Hint{PitchScale: 1.0, DurationScale: 1.0}
}

// Merge combines two hints: multiplicative for the scale fields, additive
// for offset and silence. All four fields combine independently, so merge
// order does not affect the result.
func (h Hint) Merge(other Hint) Hint {
	return Hint{
		PitchScale:           h.PitchScale * other.PitchScale,
		DurationScale:        h.DurationScale * other.DurationScale,
		PitchOffsetSemitones: h.PitchOffsetSemitones + other.PitchOffsetSemitones,
		InsertSilenceMs:      h.InsertSilenceMs + other.InsertSilenceMs,
	}
}

// IsIdentity reports whether the hint equals the neutral hint.
func (h Hint) IsIdentity() bool {
	return h == Identity()
}
