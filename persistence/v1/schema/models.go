package schema

// One statement per string, ramsql and mysql both refuse multi-statement
// exec through the driver.
var schemas = []string{
	`CREATE TABLE tblAccount (account_id BIGSERIAL PRIMARY KEY, username TEXT)`,
	`CREATE TABLE tblNotes (note_id BIGSERIAL PRIMARY KEY, account_id BIGINT, title TEXT, url TEXT)`,
	`CREATE TABLE tblProtocol (protocol_id BIGSERIAL PRIMARY KEY, title TEXT, content TEXT)`,
}

var dropSchemas = []string{
	`DROP TABLE tblNotes`,
	`DROP TABLE tblProtocol`,
	`DROP TABLE tblAccount`,
}
