// Package a11y holds the description string table and the template helpers used to compose
// screen-reader sentences from it.
package a11y

// Strings is the full table of description fragments and sentence patterns. Patterns use
// {{name}} placeholders, filled by Fill.
type Strings struct {
	// Play-area locations.
	LeftShoulderOfSweater    string `yaml:"left_shoulder_of_sweater"`
	LeftArmOfSweater         string `yaml:"left_arm_of_sweater"`
	LowerLeftArmOfSweater    string `yaml:"lower_left_arm_of_sweater"`
	UpperLeftSideOfSweater   string `yaml:"upper_left_side_of_sweater"`
	LeftSideOfSweater        string `yaml:"left_side_of_sweater"`
	LowerLeftSideOfSweater   string `yaml:"lower_left_side_of_sweater"`
	UpperRightSideOfSweater  string `yaml:"upper_right_side_of_sweater"`
	RightSideOfSweater       string `yaml:"right_side_of_sweater"`
	LowerRightSideOfSweater  string `yaml:"lower_right_side_of_sweater"`
	RightShoulderOfSweater   string `yaml:"right_shoulder_of_sweater"`
	RightArmOfSweater        string `yaml:"right_arm_of_sweater"`
	LowerRightArmOfSweater   string `yaml:"lower_right_arm_of_sweater"`
	UpperLeftSideOfPlayArea  string `yaml:"upper_left_side_of_play_area"`
	LeftSideOfPlayArea       string `yaml:"left_side_of_play_area"`
	LowerLeftSideOfPlayArea  string `yaml:"lower_left_side_of_play_area"`
	UpperCenterOfPlayArea    string `yaml:"upper_center_of_play_area"`
	CenterOfPlayArea         string `yaml:"center_of_play_area"`
	LowerCenterOfPlayArea    string `yaml:"lower_center_of_play_area"`
	UpperRightSideOfPlayArea string `yaml:"upper_right_side_of_play_area"`
	RightSideOfPlayArea      string `yaml:"right_side_of_play_area"`
	LowerRightSideOfPlayArea string `yaml:"lower_right_side_of_play_area"`
	UpperWall                string `yaml:"upper_wall"`
	Wall                     string `yaml:"wall"`
	LowerWall                string `yaml:"lower_wall"`
	UpperRightEdgeOfPlayArea string `yaml:"upper_right_edge_of_play_area"`
	RightEdgeOfPlayArea      string `yaml:"right_edge_of_play_area"`
	LowerRightEdgeOfPlayArea string `yaml:"lower_right_edge_of_play_area"`

	// Landmarks. The preposition ("near", "very close to") comes from the balloon patterns.
	LandmarkNearSweater               string `yaml:"landmark_near_sweater"`
	LandmarkVeryCloseToSweater        string `yaml:"landmark_very_close_to_sweater"`
	LandmarkAtUpperCenterPlayArea     string `yaml:"landmark_at_upper_center_play_area"`
	LandmarkAtCenterPlayArea          string `yaml:"landmark_at_center_play_area"`
	LandmarkAtLowerCenterPlayArea     string `yaml:"landmark_at_lower_center_play_area"`
	LandmarkNearUpperWall             string `yaml:"landmark_near_upper_wall"`
	LandmarkNearWall                  string `yaml:"landmark_near_wall"`
	LandmarkNearLowerWall             string `yaml:"landmark_near_lower_wall"`
	LandmarkVeryCloseToUpperWall      string `yaml:"landmark_very_close_to_upper_wall"`
	LandmarkVeryCloseToWall           string `yaml:"landmark_very_close_to_wall"`
	LandmarkVeryCloseToLowerWall      string `yaml:"landmark_very_close_to_lower_wall"`
	LandmarkNearUpperRightEdge        string `yaml:"landmark_near_upper_right_edge"`
	LandmarkNearRightEdge             string `yaml:"landmark_near_right_edge"`
	LandmarkNearLowerRightEdge        string `yaml:"landmark_near_lower_right_edge"`
	LandmarkVeryCloseToUpperRightEdge string `yaml:"landmark_very_close_to_upper_right_edge"`
	LandmarkVeryCloseToRightEdge      string `yaml:"landmark_very_close_to_right_edge"`
	LandmarkVeryCloseToLowerRightEdge string `yaml:"landmark_very_close_to_lower_right_edge"`

	// Amounts.
	No         string `yaml:"no"`
	AFew       string `yaml:"a_few"`
	Several    string `yaml:"several"`
	Many       string `yaml:"many"`
	All        string `yaml:"all"`
	Zero       string `yaml:"zero"`
	Positive   string `yaml:"positive"`
	Negative   string `yaml:"negative"`
	ALittleBit string `yaml:"a_little_bit"`
	ALot       string `yaml:"a_lot"`
	QuiteALot  string `yaml:"quite_a_lot"`

	// Directions.
	Up                string `yaml:"up"`
	Down              string `yaml:"down"`
	Left              string `yaml:"left"`
	Right             string `yaml:"right"`
	UpAndToTheRight   string `yaml:"up_and_to_the_right"`
	UpAndToTheLeft    string `yaml:"up_and_to_the_left"`
	DownAndToTheRight string `yaml:"down_and_to_the_right"`
	DownAndToTheLeft  string `yaml:"down_and_to_the_left"`

	// Object labels.
	YellowBalloonLabel string `yaml:"yellow_balloon_label"`
	GreenBalloonLabel  string `yaml:"green_balloon_label"`
	SweaterLabel       string `yaml:"sweater_label"`
	WallLabel          string `yaml:"wall_label"`
	BothBalloons       string `yaml:"both_balloons"`
	Balloon            string `yaml:"balloon"`
	Balloons           string `yaml:"balloons"`

	SingleStatementPattern string `yaml:"single_statement_pattern"`

	// Wall.
	WallDescriptionPattern          string `yaml:"wall_description_pattern"`
	WallLocation                    string `yaml:"wall_location"`
	WallNoNetCharge                 string `yaml:"wall_no_net_charge"`
	ManyChargePairs                 string `yaml:"many_charge_pairs"`
	ShowingNoCharges                string `yaml:"showing_no_charges"`
	WallChargeWithoutInducedPattern string `yaml:"wall_charge_without_induced_pattern"`
	WallChargeWithInducedPattern    string `yaml:"wall_charge_with_induced_pattern"`
	InducedChargePattern            string `yaml:"induced_charge_pattern"`
	InducedChargeNoAmountPattern    string `yaml:"induced_charge_no_amount_pattern"`
	WallTwoBalloonInducedPattern    string `yaml:"wall_two_balloon_induced_pattern"`
	PositiveChargesDoNotMove        string `yaml:"positive_charges_do_not_move"`
	WallInducedChargeSummaryPattern string `yaml:"wall_induced_charge_summary_pattern"`

	// Sweater.
	SweaterPosition                   string `yaml:"sweater_position"`
	SweaterDescriptionPattern         string `yaml:"sweater_description_pattern"`
	SweaterChargePattern              string `yaml:"sweater_charge_pattern"`
	SweaterNetChargePattern           string `yaml:"sweater_net_charge_pattern"`
	SweaterRelativeChargeAllPattern   string `yaml:"sweater_relative_charge_all_pattern"`
	SweaterRelativeChargeDiffPattern  string `yaml:"sweater_relative_charge_diff_pattern"`
	SweaterNoMoreCharges              string `yaml:"sweater_no_more_charges"`
	ShowingAllPositiveCharges         string `yaml:"showing_all_positive_charges"`
	SweaterHasRelativeChargePattern   string `yaml:"sweater_has_relative_charge_pattern"`
	SweaterHasNetChargeShowingPattern string `yaml:"sweater_has_net_charge_showing_pattern"`
	PositiveNetCharge                 string `yaml:"positive_net_charge"`
	NeutralNetCharge                  string `yaml:"neutral_net_charge"`
	MoreChargesPattern                string `yaml:"more_charges_pattern"`
	MoreChargesFurtherPattern         string `yaml:"more_charges_further_pattern"`
	MorePairsOfCharges                string `yaml:"more_pairs_of_charges"`
	MoreHiddenPairsOfCharges          string `yaml:"more_hidden_pairs_of_charges"`

	// Summaries.
	SummaryObjectHasChargePattern  string `yaml:"summary_object_has_charge_pattern"`
	SummaryNeutralChargesPattern   string `yaml:"summary_neutral_charges_pattern"`
	SummaryObjectChargePattern     string `yaml:"summary_object_charge_pattern"`
	SummaryBalloonNeutralCharge    string `yaml:"summary_balloon_neutral_charge"`
	RoomObjectsPattern             string `yaml:"room_objects_pattern"`
	SummaryObjectsPattern          string `yaml:"summary_objects_pattern"`
	AYellowBalloon                 string `yaml:"a_yellow_balloon"`
	AGreenBalloon                  string `yaml:"a_green_balloon"`
	ASweater                       string `yaml:"a_sweater"`
	AndASweater                    string `yaml:"and_a_sweater"`
	AndARemovableWall              string `yaml:"and_a_removable_wall"`
	BalloonSummaryPattern          string `yaml:"balloon_summary_pattern"`
	BalloonSummaryInducedPattern   string `yaml:"balloon_summary_induced_pattern"`
	TwoBalloonLocationSummary      string `yaml:"two_balloon_location_summary"`
	LocationSummaryPositiveCharges string `yaml:"location_summary_positive_charges"`

	// Balloon.
	BalloonStickingTo                 string `yaml:"balloon_sticking_to"`
	BalloonTouching                   string `yaml:"balloon_touching"`
	BalloonOn                         string `yaml:"balloon_on"`
	BalloonAt                         string `yaml:"balloon_at"`
	BalloonNear                       string `yaml:"balloon_near"`
	BalloonVeryCloseTo                string `yaml:"balloon_very_close_to"`
	BalloonLocationAttractivePattern  string `yaml:"balloon_location_attractive_pattern"`
	BalloonLabelWithAttractivePattern string `yaml:"balloon_label_with_attractive_pattern"`
	BalloonNetChargePattern           string `yaml:"balloon_net_charge_pattern"`
	BalloonRelativeChargePattern      string `yaml:"balloon_relative_charge_pattern"`
	BalloonChargeDifferencesPattern   string `yaml:"balloon_charge_differences_pattern"`
	BalloonChargePattern              string `yaml:"balloon_charge_pattern"`
	BalloonHasRelativeChargePattern   string `yaml:"balloon_has_relative_charge_pattern"`
	BalloonHasNetChargePattern        string `yaml:"balloon_has_net_charge_pattern"`
	BalloonPicksUpChargesPattern      string `yaml:"balloon_picks_up_charges_pattern"`
	BalloonPicksUpMoreChargesPattern  string `yaml:"balloon_picks_up_more_charges_pattern"`
	BalloonPicksUpChargesDiffPattern  string `yaml:"balloon_picks_up_charges_diff_pattern"`
	LastChargePickedUpPattern         string `yaml:"last_charge_picked_up_pattern"`

	// Alerts.
	WallRemoved                string `yaml:"wall_removed"`
	WallAdded                  string `yaml:"wall_added"`
	ShowAllChargesAlert        string `yaml:"show_all_charges_alert"`
	ShowNoChargesAlert         string `yaml:"show_no_charges_alert"`
	ShowChargeDifferencesAlert string `yaml:"show_charge_differences_alert"`
	BalloonAddedPattern        string `yaml:"balloon_added_pattern"`
	BalloonRemovedPattern      string `yaml:"balloon_removed_pattern"`
	ResetBalloonsAlertPattern  string `yaml:"reset_balloons_alert_pattern"`
}

// English returns the built-in English string table.
func English() Strings {
	return Strings{
		LeftShoulderOfSweater:    "left shoulder of sweater",
		LeftArmOfSweater:         "left arm of sweater",
		LowerLeftArmOfSweater:    "lower-left arm of sweater",
		UpperLeftSideOfSweater:   "upper-left side of sweater",
		LeftSideOfSweater:        "left side of sweater",
		LowerLeftSideOfSweater:   "lower-left side of sweater",
		UpperRightSideOfSweater:  "upper-right side of sweater",
		RightSideOfSweater:       "right side of sweater",
		LowerRightSideOfSweater:  "lower-right side of sweater",
		RightShoulderOfSweater:   "right shoulder of sweater",
		RightArmOfSweater:        "right arm of sweater",
		LowerRightArmOfSweater:   "lower-right arm of sweater",
		UpperLeftSideOfPlayArea:  "upper-left side of Play Area",
		LeftSideOfPlayArea:       "left side of Play Area",
		LowerLeftSideOfPlayArea:  "lower-left side of Play Area",
		UpperCenterOfPlayArea:    "upper-center of Play Area",
		CenterOfPlayArea:         "center of Play Area",
		LowerCenterOfPlayArea:    "lower-center of Play Area",
		UpperRightSideOfPlayArea: "upper-right side of Play Area",
		RightSideOfPlayArea:      "right side of Play Area",
		LowerRightSideOfPlayArea: "lower-right side of Play Area",
		UpperWall:                "upper wall",
		Wall:                     "wall",
		LowerWall:                "lower wall",
		UpperRightEdgeOfPlayArea: "upper-right edge of Play Area",
		RightEdgeOfPlayArea:      "right edge of Play Area",
		LowerRightEdgeOfPlayArea: "lower-right edge of Play Area",

		LandmarkNearSweater:               "sweater",
		LandmarkVeryCloseToSweater:        "sweater",
		LandmarkAtUpperCenterPlayArea:     "upper-center of Play Area",
		LandmarkAtCenterPlayArea:          "center of Play Area",
		LandmarkAtLowerCenterPlayArea:     "lower-center of Play Area",
		LandmarkNearUpperWall:             "upper wall",
		LandmarkNearWall:                  "wall",
		LandmarkNearLowerWall:             "lower wall",
		LandmarkVeryCloseToUpperWall:      "upper wall",
		LandmarkVeryCloseToWall:           "wall",
		LandmarkVeryCloseToLowerWall:      "lower wall",
		LandmarkNearUpperRightEdge:        "upper right edge",
		LandmarkNearRightEdge:             "right edge",
		LandmarkNearLowerRightEdge:        "lower-right edge",
		LandmarkVeryCloseToUpperRightEdge: "upper-right edge",
		LandmarkVeryCloseToRightEdge:      "right edge",
		LandmarkVeryCloseToLowerRightEdge: "lower-right edge",

		No:         "no",
		AFew:       "a few",
		Several:    "several",
		Many:       "many",
		All:        "all",
		Zero:       "zero",
		Positive:   "positive",
		Negative:   "negative",
		ALittleBit: "a little bit",
		ALot:       "a lot",
		QuiteALot:  "quite a lot",

		Up:                "up",
		Down:              "down",
		Left:              "left",
		Right:             "right",
		UpAndToTheRight:   "up and to the right",
		UpAndToTheLeft:    "up and to the left",
		DownAndToTheRight: "down and to the right",
		DownAndToTheLeft:  "down and to the left",

		YellowBalloonLabel: "Yellow Balloon",
		GreenBalloonLabel:  "Green Balloon",
		SweaterLabel:       "Sweater",
		WallLabel:          "Wall",
		BothBalloons:       "balloons",
		Balloon:            "Balloon",
		Balloons:           "Balloons",

		SingleStatementPattern: "{{statement}}.",

		WallDescriptionPattern:          "{{location}}. {{charge}}.",
		WallLocation:                    "At right edge of Play Area",
		WallNoNetCharge:                 "Has zero net charge",
		ManyChargePairs:                 "many pairs of negative and positive charges",
		ShowingNoCharges:                "showing no charges",
		WallChargeWithoutInducedPattern: "{{netCharge}}, {{shownCharges}}",
		WallChargeWithInducedPattern:    "{{netCharge}}, {{shownCharges}}. {{inducedCharge}}",
		InducedChargePattern:            "Negative charges in {{wallLocation}} move away from {{balloon}} {{inductionAmount}}",
		InducedChargeNoAmountPattern:    "Negative charges in {{wallLocation}} move away from {{balloon}}.",
		WallTwoBalloonInducedPattern:    "{{yellowBalloon}} {{greenBalloon}}",
		PositiveChargesDoNotMove:        "Positive charges do not move",
		WallInducedChargeSummaryPattern: "{{inducedCharge}} {{positiveCharges}}",

		SweaterPosition:                   "At left edge of Play Area.",
		SweaterDescriptionPattern:         "{{position}} {{charge}}",
		SweaterChargePattern:              "{{netCharge}}, {{relativeCharge}}",
		SweaterNetChargePattern:           "Has {{netCharge}} net charge",
		SweaterRelativeChargeAllPattern:   "{{charge}} more positive charges than negative charges",
		SweaterRelativeChargeDiffPattern:  "showing {{charge}} positive charges",
		SweaterNoMoreCharges:              "no more negative charges, only positive charges",
		ShowingAllPositiveCharges:         "showing all positive charges",
		SweaterHasRelativeChargePattern:   "Sweater has {{relativeCharge}}.",
		SweaterHasNetChargeShowingPattern: "Sweater has positive net charge, {{showing}}.",
		PositiveNetCharge:                 "positive net charge",
		NeutralNetCharge:                  "neutral net charge",
		MoreChargesPattern:                "{{moreCharges}} {{direction}}.",
		MoreChargesFurtherPattern:         "{{moreCharges}} further {{direction}}.",
		MorePairsOfCharges:                "More pairs of charges",
		MoreHiddenPairsOfCharges:          "More hidden pairs of charges",

		SummaryObjectHasChargePattern:  "{{object}} has {{charge}} net charge",
		SummaryNeutralChargesPattern:   "{{amount}} pairs of negative and positive charges",
		SummaryObjectChargePattern:     "{{object}}, {{charge}}.",
		SummaryBalloonNeutralCharge:    "a few pairs of negative and positive charges",
		RoomObjectsPattern:             "Currently, room has {{description}}.",
		SummaryObjectsPattern:          "{{yellowBalloon}} {{greenBalloon}} {{sweater}} {{wall}}",
		AYellowBalloon:                 "a yellow balloon,",
		AGreenBalloon:                  "a green balloon,",
		ASweater:                       "a sweater,",
		AndASweater:                    "and a sweater",
		AndARemovableWall:              "and a removable wall",
		BalloonSummaryPattern:          "{{balloon}}, {{attractiveState}} {{location}}.",
		BalloonSummaryInducedPattern:   "{{balloon}}, {{attractiveState}} {{location}}. {{inducedCharge}}.",
		TwoBalloonLocationSummary:      "{{yellowBalloon}} {{greenBalloon}}",
		LocationSummaryPositiveCharges: "{{balloonSummary}} Positive charges do not move.",

		BalloonStickingTo:                 "Sticking to",
		BalloonTouching:                   "Touching",
		BalloonOn:                         "On",
		BalloonAt:                         "At",
		BalloonNear:                       "Near",
		BalloonVeryCloseTo:                "Very close to",
		BalloonLocationAttractivePattern:  "{{attractiveState}} {{location}}",
		BalloonLabelWithAttractivePattern: "{{balloonLabel}}, {{attractiveStateAndLocation}}",
		BalloonNetChargePattern:           "Has {{chargeAmount}} net charge",
		BalloonRelativeChargePattern:      "{{amount}} more negative charges than positive charges",
		BalloonChargeDifferencesPattern:   "showing {{amount}} negative charges",
		BalloonChargePattern:              "{{netCharge}}, {{relativeCharge}}",
		BalloonHasRelativeChargePattern:   "{{balloonLabel}} has {{relativeCharge}}",
		BalloonHasNetChargePattern:        "{{balloon}} has {{charge}} net charge, {{showing}}",
		BalloonPicksUpChargesPattern:      "{{balloon}} picks up negative charges from sweater",
		BalloonPicksUpMoreChargesPattern:  "{{balloon}} picks up more negative charges",
		BalloonPicksUpChargesDiffPattern:  "{{pickUp}}. Same increase of positive charges on sweater.",
		LastChargePickedUpPattern:         "{{sweater}} {{balloon}}.",

		WallRemoved:                "Wall removed from Play Area.",
		WallAdded:                  "Wall added to Play Area.",
		ShowAllChargesAlert:        "No charges hidden.",
		ShowNoChargesAlert:         "All charges hidden.",
		ShowChargeDifferencesAlert: "Only unpaired charges shown.",
		BalloonAddedPattern:        "{{balloonLabel}} added to Play Area.",
		BalloonRemovedPattern:      "{{balloonLabel}} removed from Play Area.",
		ResetBalloonsAlertPattern:  "{{balloons}} and sweater reset.",
	}
}
