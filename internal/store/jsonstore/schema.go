package jsonstore

import jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

const todosSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text", "done"],
    "properties": {
      "id": {"type": "integer", "minimum": 0},
      "text": {"type": "string"},
      "done": {"type": "boolean"},
      "category": {
        "oneOf": [
          {"type": "string"},
          {"type": "null"},
          {
            "type": "object",
            "required": ["custom"],
            "properties": {"custom": {"type": "string"}}
          }
        ]
      }
    }
  }
}`

const categoriesSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {"type": "string"}
}`

var (
	todosSchema      = jsonschema.MustCompileString("todos.schema.json", todosSchemaJSON)
	categoriesSchema = jsonschema.MustCompileString("categories.schema.json", categoriesSchemaJSON)
)
