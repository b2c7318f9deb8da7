package tetris

// LevelPolicy supplies the current level. Levels start at 1 and never
// decrease until Reset.
type LevelPolicy interface {
	Level() int
	Reset()
}

// ScoreObserver is implemented by level policies that progress with the
// score. The game reports every score change to it.
type ScoreObserver interface {
	ScoreChanged(delta int)
}

// FixedLevel is a LevelPolicy that never changes.
type FixedLevel int

func (l FixedLevel) Level() int {
	return max(int(l), 1)
}

func (FixedLevel) Reset() {}

// ScoreLevel raises the level by one every RowsPerLevel cleared rows, up to
// MaxLevel when it is positive.
type ScoreLevel struct {
	RowsPerLevel int
	MaxLevel     int

	rows int
}

// NewScoreLevel creates a ScoreLevel.
func NewScoreLevel(rowsPerLevel, maxLevel int) *ScoreLevel {
	return &ScoreLevel{RowsPerLevel: rowsPerLevel, MaxLevel: maxLevel}
}

func (l *ScoreLevel) Level() int {
	level := 1
	if l.RowsPerLevel > 0 {
		level += l.rows / l.RowsPerLevel
	}
	if l.MaxLevel > 0 && level > l.MaxLevel {
		level = l.MaxLevel
	}
	return level
}

func (l *ScoreLevel) Reset() {
	l.rows = 0
}

// ScoreChanged implements ScoreObserver.
func (l *ScoreLevel) ScoreChanged(delta int) {
	if delta > 0 {
		l.rows += delta
	}
}
