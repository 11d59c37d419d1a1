package service

// Stage is a step of transaction creation. Stages only move forward.
type Stage int

const (
	StageReceived Stage = iota
	StageHeaderValidated
	StageLegsBuilt
	StagePostingsCompleted
	StagePrimaryFieldsDerived
	StagePersisted
)

var stageNames = [...]string{
	StageReceived:             "Received",
	StageHeaderValidated:      "HeaderValidated",
	StageLegsBuilt:            "LegsBuilt",
	StagePostingsCompleted:    "PostingsCompleted",
	StagePrimaryFieldsDerived: "PrimaryFieldsDerived",
	StagePersisted:            "Persisted",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "Unknown"
	}
	return stageNames[s]
}
