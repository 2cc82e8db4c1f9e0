package cli

import "time"

const (
	// commandTimeout bounds any single database command
	commandTimeout = 2 * time.Minute

	requestSeparator = "="
	maintenanceDB    = "postgres"
)

// Output lines
const (
	msgDocumentValid   = "✓ %s is valid\n"
	msgImportUnchanged = "✓ %s unchanged (hash %s), nothing imported\n"
	msgImportDone      = "✓ Imported %s\n"
	msgMigrationsDone  = "✓ Migrations applied"
	msgDatabaseCreated = "✓ Created database %s\n"
	msgDatabaseExists  = "Database %s already exists\n"
	msgEnvOK           = "✓ Environment looks good"
	msgEnvWarning      = "! %s\n"
	msgPlanEmpty       = "Nothing to carry"
	msgRequestsSkipped = "%d request(s) skipped\n"
)

// Errors
const (
	errMsgBadRequestFmt  = "invalid request %q: want name=amount"
	errMsgBadAmountFmt   = "invalid amount in %q: %w"
	errMsgUnknownItemFmt = "unknown item %q%s"
	errMsgDidYouMeanFmt  = " (did you mean %q?)"
	errMsgNoRequests     = "at least one name=amount request is required"
	errMsgLoadConfig     = "failed to load configuration: %w"
	errMsgConnect        = "failed to connect to database: %w"
	errMsgCreateDatabase = "failed to create database %s: %w"
	errMsgCheckDatabase  = "failed to check database %s: %w"
)
