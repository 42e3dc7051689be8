package repository

// Compile-time interface checks
var _ AccountsRepo = (*accountsRepo)(nil)
