// Package pipeline defines the three stages that turn the raw survey
// workbooks into the career database:
//
//	normalize  oews_all_data.xlsx            -> cleaned_oes_data.csv
//	enrich     cleaned_oes_data.csv + education.xlsx -> combined_career_data.csv
//	careerdb   combined_career_data.csv      -> career_data.db
//
// Each stage is an app.Stage so it can be run by its own binary or in
// sequence by RunAll.
package pipeline
