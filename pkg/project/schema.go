package project

// documentSchema is the JSON schema for project documents. Validation runs
// on the yaml document after conversion to plain JSON values, so it catches
// structural mistakes (unknown series kinds, missing frame sizes) before
// any tool touches the store.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "map project document",
  "type": "object",
  "required": ["version", "maps"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "activeMap": {"type": "string"},
    "maps": {
      "type": "array",
      "minItems": 1,
      "items": {"$ref": "#/definitions/map"}
    },
    "layouts": {
      "type": "array",
      "items": {"$ref": "#/definitions/layout"}
    }
  },
  "definitions": {
    "map": {
      "type": "object",
      "required": ["name", "spatialReference"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "spatialReference": {
          "type": "object",
          "required": ["srid"],
          "properties": {
            "srid": {"type": "integer"},
            "name": {"type": "string"},
            "wkt": {"type": "string"}
          }
        },
        "layers": {"type": "array"}
      }
    },
    "layout": {
      "type": "object",
      "required": ["name", "mapFrame"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "mapFrame": {
          "type": "object",
          "required": ["map", "widthMM", "heightMM"],
          "properties": {
            "map": {"type": "string", "minLength": 1},
            "widthMM": {"type": "number", "exclusiveMinimum": 0},
            "heightMM": {"type": "number", "exclusiveMinimum": 0}
          }
        },
        "series": {"$ref": "#/definitions/series"}
      }
    },
    "series": {
      "type": "object",
      "required": ["kind"],
      "properties": {
        "kind": {"enum": ["bookmark", "field"]}
      },
      "allOf": [
        {
          "if": {"properties": {"kind": {"const": "bookmark"}}},
          "then": {
            "required": ["bookmarks"],
            "properties": {
              "bookmarks": {
                "type": "array",
                "minItems": 1,
                "items": {
                  "type": "object",
                  "required": ["name", "extent"],
                  "properties": {
                    "name": {"type": "string"},
                    "scale": {"type": "number"},
                    "extent": {
                      "type": "object",
                      "required": ["xmin", "ymin", "xmax", "ymax"]
                    }
                  }
                }
              }
            }
          }
        },
        {
          "if": {"properties": {"kind": {"const": "field"}}},
          "then": {
            "required": ["field"],
            "properties": {
              "field": {
                "type": "object",
                "required": ["source", "table", "nameField"],
                "properties": {
                  "source": {"type": "string", "minLength": 1},
                  "table": {"type": "string", "minLength": 1},
                  "nameField": {"type": "string", "minLength": 1},
                  "marginPercent": {"type": "number", "minimum": 0}
                }
              }
            }
          }
        }
      ]
    }
  }
}`
