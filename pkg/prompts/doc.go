// Package prompts provides interactive guided workflows for working with the
// prompt diagnostic engine.
//
// # Overview
//
// Prompts are interactive guides that help users through diagnosis-driven
// prompt work by providing:
//   - The full diagnostic report for a prompt
//   - The auto-fixed draft when addressable issues exist
//   - Rewrite and review instructions for what the engine cannot fix
//
// # Available Prompts
//
// The package includes two prompts:
//
//   - improve-prompt: guided rewrite of a weak prompt from its diagnosis
//   - review-prompt: walkthrough of a prompt's diagnostic findings
//
// # Architecture
//
// The prompts package provides:
//   - A prompt builder for constructing formatted responses
//   - Input validation utilities
//   - Individual prompt implementations
//   - Registration function for MCP server integration
//
// Each prompt follows a consistent pattern:
//  1. Parse and validate arguments
//  2. Check what information is still needed
//  3. Build appropriate guidance
//  4. Return formatted prompt result
package prompts
