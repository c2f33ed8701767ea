// Package assets provides the stylesheets and page templates used to render
// notebooks.
//
// Built-in assets are embedded at compile time. A custom base directory can
// override any of them; missing files fall back to the embedded copy:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}/
//	        ├── page.html    # notebook page
//	        └── chart.html   # standalone chart page
//
// Asset names are validated before use and filesystem reads are confined to
// the base directory, symlinks included.
package assets
