package entity

// ToggleOutcome 一次 toggle 的结果，调用方据此决定提示文案
type ToggleOutcome int8

const (
	OutcomeAdded ToggleOutcome = iota + 1
	OutcomeRemoved
	OutcomeAlreadyExists
	OutcomeInvalidOperation
	OutcomeTransientFailure
)

var outcomeNames = map[ToggleOutcome]string{
	OutcomeAdded:            "added",
	OutcomeRemoved:          "removed",
	OutcomeAlreadyExists:    "already_exists",
	OutcomeInvalidOperation: "invalid_operation",
	OutcomeTransientFailure: "transient_failure",
}

func (o ToggleOutcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return "unknown"
}

// Present 结果对应的权威存在状态；失败类结果没有意义，返回 false
func (o ToggleOutcome) Present() bool {
	return o == OutcomeAdded || o == OutcomeAlreadyExists
}

// Succeeded AlreadyExists 属于良性竞争结果，按成功处理
func (o ToggleOutcome) Succeeded() bool {
	return o == OutcomeAdded || o == OutcomeRemoved || o == OutcomeAlreadyExists
}

// AllOutcomes 用于初始化指标标签
func AllOutcomes() []ToggleOutcome {
	return []ToggleOutcome{
		OutcomeAdded,
		OutcomeRemoved,
		OutcomeAlreadyExists,
		OutcomeInvalidOperation,
		OutcomeTransientFailure,
	}
}
