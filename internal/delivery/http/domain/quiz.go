package domain

var (
	QUIZ_START_SUCCESS       = "Quiz session started"
	QUIZ_START_FAILED        = "Failed to start quiz session"
	QUIZ_QUESTION_SUCCESS    = "Next question retrieved"
	QUIZ_QUESTION_FAILED     = "Failed to get next question"
	QUIZ_ANSWER_SUCCESS      = "Answer submitted"
	QUIZ_ANSWER_FAILED       = "Failed to submit answer"
	QUIZ_PERFORMANCE_SUCCESS = "Performance summary retrieved"
	QUIZ_PERFORMANCE_FAILED  = "Failed to get performance summary"
	QUIZ_STATUS_SUCCESS      = "Session status retrieved"
	QUIZ_STATUS_FAILED       = "Failed to get session status"
	QUIZ_END_SUCCESS         = "Quiz session ended"
	QUIZ_END_FAILED          = "Failed to end quiz session"
	QUIZ_RESET_SUCCESS       = "Quiz session reset"
	QUIZ_RESET_FAILED        = "Failed to reset quiz session"
	QUIZ_HISTORY_SUCCESS     = "Session history retrieved"
	QUIZ_HISTORY_FAILED      = "Failed to get session history"
	QUIZ_TOPICS_SUCCESS      = "Available topics retrieved"
	QUIZ_TOPICS_FAILED       = "Failed to get available topics"
	QUIZ_STATS_SUCCESS       = "Question bank stats retrieved"
	QUIZ_STATS_FAILED        = "Failed to get question bank stats"
	QUIZ_NARRATIVE_SUCCESS   = "Session summary retrieved"
	QUIZ_NARRATIVE_FAILED    = "Failed to get session summary"
)
