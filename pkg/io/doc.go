// Package io provides JSON import and export for saved diagrams.
//
// # JSON Format
//
// A bundle is an object with a single "documents" array:
//
//	{
//	  "documents": [
//	    {
//	      "id": "0b6c1f7e-4d0a-4d8e-9a55-3f3d1b7f2c11",
//	      "title": "login flow",
//	      "script": "---\ntitle: login flow\n---\nflowchart TB\n...",
//	      "created_at": "2026-01-02T15:04:05Z",
//	      "updated_at": "2026-01-02T15:04:05Z"
//	    }
//	  ]
//	}
//
// "title" and "script" are required. A missing "id" is assigned on import
// and missing timestamps are set to the import time.
//
// # Import
//
// Use [ImportJSON] to read a bundle from a file path, or [ReadJSON] to read
// from any io.Reader. Both reject duplicate IDs and invalid titles.
//
// # Export
//
// Use [ExportJSON] to write a bundle to a file, or [WriteJSON] to write to
// any io.Writer. [ExportScripts] writes each document as a .mmd file instead.
package io
