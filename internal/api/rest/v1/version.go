package v1

// BasePath is the URL prefix for version 1 of the document signing API.
const BasePath = "/api/v1/dss"
