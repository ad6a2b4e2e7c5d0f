package session

import "math"

// Question is a single quiz item: a prompt with four options, exactly one of
// which is correct.
type Question struct {
	Prompt        string
	Options       [4]string
	CorrectOption int
}

// QuizResult is the deterministic outcome of a finished quiz.
type QuizResult struct {
	Correct    int
	Total      int
	Percentage int
}

// QuizSession drives a quiz over an ordered question slice. Answers are
// recorded per question index; the last selection for an index wins. A
// question with no recorded answer cannot be passed.
type QuizSession struct {
	questions []Question
	index     int
	answers   map[int]int
	finished  bool
	active    bool
}

// StartQuizSession begins a quiz over the given questions.
// The slice must contain at least one question.
func StartQuizSession(questions []Question) (QuizSession, error) {
	if len(questions) == 0 {
		return QuizSession{}, ErrEmptySlice
	}
	return QuizSession{
		questions: questions,
		answers:   make(map[int]int, len(questions)),
		active:    true,
	}, nil
}

// Active reports whether the quiz has been started and not exited.
func (s *QuizSession) Active() bool { return s.active }

// Finished reports whether every question has been answered and passed.
func (s *QuizSession) Finished() bool { return s.finished }

// Len returns the number of questions.
func (s *QuizSession) Len() int { return len(s.questions) }

// Index returns the current 0-based position.
func (s *QuizSession) Index() int { return s.index }

// Current returns the question under the cursor.
// Only meaningful while the session is active and not finished.
func (s *QuizSession) Current() Question {
	if !s.active || s.finished {
		return Question{}
	}
	return s.questions[s.index]
}

// Answer returns the recorded choice for the given question index.
func (s *QuizSession) Answer(index int) (int, bool) {
	choice, ok := s.answers[index]
	return choice, ok
}

// SelectAnswer records the chosen option for the current question without
// advancing. Re-selecting overwrites the earlier choice. Out-of-range
// options are ignored.
func (s *QuizSession) SelectAnswer(option int) {
	if !s.active || s.finished {
		return
	}
	if option < 0 || option >= len(s.questions[s.index].Options) {
		return
	}
	s.answers[s.index] = option
}

// Advance moves to the next question once the current one has a recorded
// answer; with no recorded answer it is a no-op, so an unanswered question
// cannot be skipped. Passing the last question finishes the quiz.
func (s *QuizSession) Advance() {
	if !s.active || s.finished {
		return
	}
	if _, ok := s.answers[s.index]; !ok {
		return
	}
	s.index++
	if s.index == len(s.questions) {
		s.finished = true
	}
}

// Retreat steps back one question, clamped at the first. Recorded answers
// are kept.
func (s *QuizSession) Retreat() {
	if !s.active || s.finished {
		return
	}
	if s.index > 0 {
		s.index--
	}
}

// Score returns the result once the quiz is finished. The outcome depends
// only on the final answer mapping, never on the order selections were made.
func (s *QuizSession) Score() (QuizResult, bool) {
	if !s.finished {
		return QuizResult{}, false
	}

	correct := 0
	for i, q := range s.questions {
		if choice, ok := s.answers[i]; ok && choice == q.CorrectOption {
			correct++
		}
	}

	total := len(s.questions)
	percentage := int(math.Round(100 * float64(correct) / float64(total)))

	return QuizResult{Correct: correct, Total: total, Percentage: percentage}, true
}

// Restart re-enters the quiz at the first question with all answers cleared.
// The question slice is kept.
func (s *QuizSession) Restart() {
	if !s.active {
		return
	}
	s.index = 0
	s.finished = false
	s.answers = make(map[int]int, len(s.questions))
}

// Exit ends the quiz and discards its local state.
func (s *QuizSession) Exit() {
	*s = QuizSession{}
}
