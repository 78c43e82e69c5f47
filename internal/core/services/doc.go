// Package services implements the driving port interfaces.
// Services contain the core business logic: library construction,
// the search orchestrator, platform boosting and the design-system
// composer.
//
// Services are pure Go with no CGO or external dependencies.
package services
