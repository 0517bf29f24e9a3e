// Package services holds the directory's business logic. Each service is an
// interface with an unexported implementation built by its constructor.
//
//   - StudentService: registration, duplicate checks, listing and suggestions
//   - InterestService: email lookup and the OTP guarded interest update
//   - NoticeService: notice board and notice email fan-out
//   - QuestionService: skill-test question bank
//   - SubmissionService: skill-test submissions and operator notification
//   - AdminAuthService: admin login and session validation
//   - HealthService: dependency reachability
package services
