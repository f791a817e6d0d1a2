/*
Package config parses server configuration from CLI flags with environment
variable fallback. A .env file in the working directory is honored via
godotenv so local development matches the deployed environment shape.

Required settings:

  - DATABASE_URL (-d): connection string for the managed database

Optional settings:

  - PORT (-p): server port (default: 8080)
  - DATABASE_TYPE (-t): postgres (default) or sqlite
  - SMTP_HOST / SMTP_PORT (--smtp-host / --smtp-port): mail relay endpoint
    (default: smtp.gmail.com:587)
  - SMTP_USER / SMTP_PASS: mail relay credentials (env only)
  - MAIL_FROM: sender address (defaults to SMTP_USER)

A missing database URL is a startup error. Missing mail credentials are not:
the board works without mail, and the contact endpoint reports the
misconfiguration when a send is attempted.
*/
package config
