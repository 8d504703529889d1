package domain

// BackupVersion is the format version stamped on exports and required on
// imports.
const BackupVersion = "1.0"

// SplitBackup is a split with its raw child rows, original ids included,
// as serialized in a backup document.
type SplitBackup struct {
	Split
	SplitExercises []SplitExercise `json:"splitExercises"`
	SplitCardio    []SplitCardio   `json:"splitCardio"`
}

// WorkoutBackup is a workout with its raw child rows as serialized in a
// backup document.
type WorkoutBackup struct {
	Workout
	Sets           []Set           `json:"sets"`
	CardioSessions []CardioSession `json:"cardioSessions"`
}

// Backup is the full export document. CardioTypes holds custom types only;
// built-in catalog rows are reconstructed by the importing instance.
type Backup struct {
	Exercises   []Exercise      `json:"exercises"`
	CardioTypes []CardioType    `json:"cardioTypes"`
	Splits      []SplitBackup   `json:"splits"`
	Workouts    []WorkoutBackup `json:"workouts"`
	ExportedAt  string          `json:"exportedAt"`
	Version     string          `json:"version"`
}

// ImportCounts reports how many rows of each kind an import inserted.
// Catalog entries merged onto an existing row by name are not counted.
type ImportCounts struct {
	Exercises   int `json:"exercises"`
	CardioTypes int `json:"cardioTypes"`
	Splits      int `json:"splits"`
	Workouts    int `json:"workouts"`
}

// ImportResult is the import operation's summary.
type ImportResult struct {
	Imported ImportCounts `json:"imported"`
}
