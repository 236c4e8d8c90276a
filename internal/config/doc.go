// Package config provides the YAML schema, defaults, and validation for the
// converter configuration: group labels and priorities, the pytest factory
// marker, path placeholders, and target debugger settings.
//
// # Schema Overview
//
//	version: "1"
//	groups:
//	  run: 1.Run              # priority 1
//	  test: 2.Test            # priority 2
//	  hidden: [internal]      # priorities 3.., hidden in the selector
//	  folders: [tools]        # visible folder groups after the hidden ones
//	pytest:
//	  factory: py.test
//	  module: pytest
//	  extra_args_option: _new_additionalArguments
//	debugger_type: debugpy
//	unbuffered_env: PYTHONUNBUFFERED
//	placeholders:
//	  project_dir: $PROJECT_DIR$
//	  project_parent: $PROJECT_DIR$/..
//	  workspace: ${workspaceFolder}
//	  workspace_parent: ${workspaceFolder}
//
// Every key is optional; missing keys take the values of Default.
package config
