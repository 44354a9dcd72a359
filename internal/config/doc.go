// Package config loads regionsynth settings from an optional YAML file and
// the environment, and turns them into engine and generator options.
//
// A configuration file looks like:
//
//	version: "1.0"
//	headers: [".h", ".hpp"]
//	companion: ".cpp"
//	indent: "    "
//	workers: 8
//	serializer:
//	  reader: stream
//	  size_of: Archive::Measure
//	wrapper:
//	  native: this->Handle
//	projections:
//	  - native: LayerMask
//	    wrapper: int
//	    category: Integral
//
// Environment variables (and a .env file in the working directory) take
// precedence over the file: REGIONSYNTH_CONFIG names the file,
// REGIONSYNTH_WORKERS sets the worker count and REGIONSYNTH_INDENT the
// indentation unit ("tab", a number of spaces, or literal text).
package config
