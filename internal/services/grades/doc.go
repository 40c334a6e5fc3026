// Package grades implements the Student Grade Evaluator activity: four
// labeled scores are collected, averaged with real division, and compared
// against an inclusive passing threshold.
package grades
