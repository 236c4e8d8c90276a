// Package jetbrains extracts run configurations from a JetBrains IDE
// workspace file (workspace.xml) into normalized runconfig values.
//
// Every <configuration> element is visited in document order. Only two
// kinds are recognized:
//
//   - "PythonConfigurationType": a script launched directly
//   - "tests" with factoryName "py.test": a pytest run, launched as a module
//
// Elements of any other type are skipped. A "tests" element with a
// different factory aborts extraction. Elements with an empty or repeated
// name are skipped; the first element with a given name wins.
//
// Options and envs are looked up among all descendants of the
// configuration element, not only its direct children.
package jetbrains
