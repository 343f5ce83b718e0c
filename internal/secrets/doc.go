// Package secrets resolves credentials for roles, users and database links.
//
// Secret values come from a dbconfig.SecretLookup. Lookups are keyed by a
// naming convention:
//
//	<UPPERCASE-NAME>.Password                         user
//	<UPPERCASE-NAME>.RolePassword                     role
//	<VARIABLE-OR-OWNER>.<UPPERCASE-NAME>.DBLinkPassword database link
//
// Backends:
//   - EnvLookup: process environment (CI pipelines expose variables this way)
//   - DotenvLookup: .env style files read with godotenv
//   - KeyVaultLookup: Azure Key Vault
//   - AWSSecretsLookup: AWS Secrets Manager
//   - Chain: first backend that has the secret wins
package secrets
