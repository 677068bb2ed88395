package service

import "fmt"

// SurveyNotFoundError is returned when the referenced survey does not exist.
type SurveyNotFoundError struct {
	SurveyID uint
}

func (e *SurveyNotFoundError) Error() string {
	return fmt.Sprintf("survey not found with ID %d", e.SurveyID)
}

// UnknownQuestionError marks an answer referencing a question that does not
// belong to the target survey. A question id that exists in another survey is
// still rejected with this error; cross-survey references are a hard input
// error, not a lookup miss.
type UnknownQuestionError struct {
	QuestionID uint
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("question with ID %d does not belong to this survey", e.QuestionID)
}

// OutOfRangeError marks an answer value outside the question's declared
// bounds. It carries the violated bound so the caller can correct and
// resubmit.
type OutOfRangeError struct {
	QuestionID uint
	Value      int
	Min        int
	Max        int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("answer %d for question %d is outside the allowed range [%d, %d]", e.Value, e.QuestionID, e.Min, e.Max)
}

// ResponseNotFoundError is returned when a persisted response id is unknown.
type ResponseNotFoundError struct {
	ResponseID uint
}

func (e *ResponseNotFoundError) Error() string {
	return fmt.Sprintf("response not found with ID %d", e.ResponseID)
}
