// Package prompt implements the validated input reader. Every read retries
// until a value of the right type inside the declared bounds arrives; parse
// failures and range violations are absorbed locally with an [ERROR] line
// and never reach the caller.
package prompt
