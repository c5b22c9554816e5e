package checkout

// Step 结算步骤
// 状态机设计:
//
//	Address → Payment → Summary → Confirmation
//
// 前进只能到下一步,后退只能到上一步;Address不能后退,Confirmation是终态。
type Step int

const (
	StepAddress      Step = 1
	StepPayment      Step = 2
	StepSummary      Step = 3
	StepConfirmation Step = 4
)

// String 实现Stringer接口(日志和接口返回)
func (s Step) String() string {
	switch s {
	case StepAddress:
		return "address"
	case StepPayment:
		return "payment"
	case StepSummary:
		return "summary"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// transitions 合法的状态转换(包括后退)
var transitions = map[Step][]Step{
	StepAddress:      {StepPayment},
	StepPayment:      {StepSummary, StepAddress},
	StepSummary:      {StepConfirmation, StepPayment},
	StepConfirmation: {},
}

// CanTransitionTo 检查是否可以转换到目标步骤
func (s Step) CanTransitionTo(target Step) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Previous 上一步,Address和Confirmation没有上一步
func (s Step) Previous() (Step, bool) {
	prev := s - 1
	if !s.CanTransitionTo(prev) {
		return 0, false
	}
	return prev, true
}
