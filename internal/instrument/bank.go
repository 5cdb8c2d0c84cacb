package instrument

var allBands = []AgeBand{Band2to3, Band4to5, Band6to7}

// Questions is the versioned question bank: 5 domains, 10 items each.
// IDs are stable and used as answer-map keys; do not renumber.
var Questions = []Question{
	// Social (10)
	{
		ID: "S1", Domain: DomainSocial, Polarity: PolarityPositive, Bands: allBands, CoreFlag: true,
		Text:    "Does the child make eye contact?",
		Example: "When you speak, the child looks at your face and holds eye contact as if listening — or avoids your eyes even when called.",
		Explain: "Eye contact is one of the basic markers of social connection; on the autism spectrum it is often weak or very brief.",
	},
	{
		ID: "S2", Domain: DomainSocial, Polarity: PolarityPositive, Bands: allBands, CoreFlag: true,
		Text:    "Does the child respond promptly when called by name?",
		Example: "Calling the child's name gets a look, a sound, or a reaction — or several calls go unanswered.",
		Explain: "This assesses response to a social call rather than hearing; a child on the spectrum may hear the name but attach no social weight to it.",
	},
	{
		ID: "S3", Domain: DomainSocial, Polarity: PolarityPositive, Bands: allBands, CoreFlag: true,
		Text:    "Does the child look where you point?",
		Example: "When you point and say \"look, a bird!\" the child follows your gesture and shares the gaze.",
		Explain: "Joint attention is among the most important screening markers; it can be underdeveloped on the spectrum.",
	},
	{
		ID: "S4", Domain: DomainSocial, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child share enjoyment with you?",
		Example: "Shows a new toy and laughs, or looks at you when something makes them happy.",
		Explain: "Typically developing children seek to share feelings; on the spectrum joy is more often experienced alone.",
	},
	{
		ID: "S5", Domain: DomainSocial, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child show interest in other children?",
		Example: "Watches children playing, approaches them, or observes them — or pays no attention at all.",
		Explain: "Peer interest is a key social-development indicator; a child on the spectrum may not register other children as significant.",
	},
	{
		ID: "S6", Domain: DomainSocial, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child act as if new people are not there?",
		Example: "A guest arrives and the child shows no reaction at all.",
		Explain: "Indifference to the social environment can be a marker; new people may simply not attract the child's attention.",
	},
	{
		ID: "S7", Domain: DomainSocial, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child react appropriately to your facial expression and tone?",
		Example: "Becomes serious when you sound upset, laughs when you are cheerful.",
		Explain: "Assesses empathy and reading of emotional signals, which can be difficult on the spectrum.",
	},
	{
		ID: "S8", Domain: DomainSocial, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child use gestures to ask for something?",
		Example: "Points at water, or takes your hand and leads you to what they want.",
		Explain: "Gesturing is communication even without speech; on the spectrum that need may be reduced.",
	},
	{
		ID: "S9", Domain: DomainSocial, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child stay connected with you during play?",
		Example: "Looks at you during a game, waits for a turn, or expects a reaction.",
		Explain: "Maintaining contact through play is an important part of social bonding.",
	},
	{
		ID: "S10", Domain: DomainSocial, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child sense your mood from your face?",
		Example: "Brightens when you smile, settles when you are serious.",
		Explain: "Understanding other people's emotions can be difficult on the spectrum.",
	},

	// Speech and communication (10)
	{
		ID: "P1", Domain: DomainSpeech, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child speak at an age-appropriate level?",
		Example: "A three-year-old builds simple sentences (\"give water\", \"where's the toy?\") — or speaks far less than peers, or not at all.",
		Explain: "Speech delay is frequent on the spectrum; it is less about late talking than about using speech little for communication.",
	},
	{
		ID: "P2", Domain: DomainSpeech, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child use words to communicate?",
		Example: "Says \"water\" when thirsty, or asks for help with words — or knows words but never uses them to request anything.",
		Explain: "Assesses whether words serve needs and communication; a child may know words yet not use them as a channel.",
	},
	{
		ID: "P3", Domain: DomainSpeech, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child answer questions appropriately?",
		Example: "Points when asked \"where?\", answers \"what did you eat?\" — or replies with something unrelated.",
		Explain: "Shows comprehension and the ability to give a relevant answer; question-and-answer exchange can be hard on the spectrum.",
	},
	{
		ID: "P4", Domain: DomainSpeech, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child repeat words or phrases (echolalia)?",
		Example: "Asked \"do you want water?\", echoes \"want water?\" — or replays cartoon lines to themselves.",
		Explain: "Echolalia — repeating heard speech without comprehension — is frequent on the spectrum and can be a stage of speech development.",
	},
	{
		ID: "P5", Domain: DomainSpeech, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child start conversations on their own?",
		Example: "Comes over to tell or ask something — or speaks only when spoken to.",
		Explain: "Initiating communication is a social-development marker; on the spectrum it is rarely child-initiated.",
	},
	{
		ID: "P6", Domain: DomainSpeech, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child answer yes/no questions correctly?",
		Example: "Says \"yes\" or nods to \"do you want it?\" — or gives an unrelated reply.",
		Explain: "Relevant answers to simple questions show comprehension and communication; this skill can be weak on the spectrum.",
	},
	{
		ID: "P7", Domain: DomainSpeech, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child's speech sound odd or robotic?",
		Example: "Speaks in a flat, emotionless tone, or unusually loud or quiet.",
		Explain: "Intonation and stress (prosody) are often atypical on the spectrum; speech can sound unnatural.",
	},
	{
		ID: "P8", Domain: DomainSpeech, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child repeat the same phrases over and over?",
		Example: "Says one word or phrase many times a day, even out of context.",
		Explain: "Repetitive speech can be self-soothing or interest-driven on the spectrum.",
	},
	{
		ID: "P9", Domain: DomainSpeech, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child listen when you speak?",
		Example: "Pauses to listen or looks at your face — or ignores what you say entirely.",
		Explain: "Assesses two-way exchange; on the spectrum a child may mostly talk without listening.",
	},
	{
		ID: "P10", Domain: DomainSpeech, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child combine gestures with speech?",
		Example: "Points while talking or nods along — or uses only words, or only gestures.",
		Explain: "Integrated gesture and speech marks healthy communication; the combination can be disrupted on the spectrum.",
	},

	// Repetitive behavior (10)
	{
		ID: "R1", Domain: DomainRepetitive, Polarity: PolarityNegative, Bands: allBands, CoreFlag: true,
		Text:    "Does the child often flap hands, spin, or jump in place?",
		Example: "Flaps hands, spins, or jumps on the spot when excited or upset.",
		Explain: "Motor stereotypies are frequent on the spectrum and often express the child's internal state.",
	},
	{
		ID: "R2", Domain: DomainRepetitive, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child repeat one movement for a long time?",
		Example: "Walks in circles or keeps up a single movement without stopping.",
		Explain: "Can indicate low flexibility; on the spectrum a child may get \"stuck\" on one behavior.",
	},
	{
		ID: "R3", Domain: DomainRepetitive, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child love spinning objects (wheels, lids)?",
		Example: "Spins a car's wheels instead of playing with the car.",
		Explain: "Tied to sensory and repetitive behavior; the motion or sight itself can be rewarding.",
	},
	{
		ID: "R4", Domain: DomainRepetitive, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child line toys up or arrange them in strict order?",
		Example: "Lines cars up in a single row rather than driving them.",
		Explain: "Non-functional play; on the spectrum play can center on order and repetition.",
	},
	{
		ID: "R5", Domain: DomainRepetitive, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child demand the same routine every day?",
		Example: "A changed route home or a broken schedule brings anger or tears.",
		Explain: "Resistance to change can be strong on the spectrum; stability matters greatly to the child.",
	},
	{
		ID: "R6", Domain: DomainRepetitive, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child react strongly to small changes?",
		Example: "Food in a different bowl or a shifted playtime causes distress.",
		Explain: "A marker of rigid behavior; adapting is hard on the spectrum.",
	},
	{
		ID: "R7", Domain: DomainRepetitive, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Is the child strongly drawn to rotating things (fans, washing machines)?",
		Example: "Watches a fan for a long time without looking away.",
		Explain: "Can reflect a sensory-stimulation need; watching motion is self-soothing.",
	},
	{
		ID: "R8", Domain: DomainRepetitive, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child fixate on a single topic or object?",
		Example: "Talks only about one cartoon, one toy, or one subject.",
		Explain: "Restricted interests; the range of interests can be narrow on the spectrum.",
	},
	{
		ID: "R9", Domain: DomainRepetitive, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Do repetitive movements seem to calm the child?",
		Example: "Starts spinning when upset and settles afterwards.",
		Explain: "Such movements can be the child's way of self-regulating.",
	},
	{
		ID: "R10", Domain: DomainRepetitive, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child often copy other people's movements?",
		Example: "Immediately raises a hand when someone else does.",
		Explain: "Echopraxia: blind imitation sometimes replaces social understanding on the spectrum.",
	},

	// Sensory sensitivity (10)
	{
		ID: "N1", Domain: DomainSensory, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Is the child excessively frightened by loud sounds?",
		Example: "Covers ears, cries, or tries to leave the room when a vacuum, hair dryer, or loud music starts.",
		Explain: "A possible sign of auditory hypersensitivity: ordinary sounds are perceived as overwhelmingly strong.",
	},
	{
		ID: "N2", Domain: DomainSensory, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child refuse to wear certain clothes?",
		Example: "Tags, seams, or fabric bother the child, who tries to pull the clothing off.",
		Explain: "Tactile hypersensitivity; an ordinary touch can feel uncomfortable or even painful.",
	},
	{
		ID: "N3", Domain: DomainSensory, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Is the child very picky about food texture?",
		Example: "Eats only soft or only crunchy food; will not even taste something new.",
		Explain: "Oral and taste hypersensitivity, not caprice — the texture itself is hard for the child to tolerate.",
	},
	{
		ID: "N4", Domain: DomainSensory, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child's pain sensitivity seem unusual?",
		Example: "Does not cry after a fall, or cries intensely at the slightest bump.",
		Explain: "May indicate hyposensitivity (feeling pain less) or hypersensitivity (feeling it far more strongly).",
	},
	{
		ID: "N5", Domain: DomainSensory, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child react badly to light?",
		Example: "Squints in sunlight, is restless in bright rooms, cannot look at a screen for long.",
		Explain: "Possible visual hypersensitivity: light is perceived as too intense.",
	},
	{
		ID: "N6", Domain: DomainSensory, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child react sharply to smells?",
		Example: "Is bothered by perfume, soap, or food smells; covers the nose.",
		Explain: "Olfactory hypersensitivity; ordinary smells can be unpleasant or distressing.",
	},
	{
		ID: "N7", Domain: DomainSensory, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child dislike being touched (hugged, stroked)?",
		Example: "Pulls back from hugs, dislikes stroking, or gets angry.",
		Explain: "A tactile-hypersensitivity marker; close physical contact feels uncomfortable.",
	},
	{
		ID: "N8", Domain: DomainSensory, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child love spinning around and jumping?",
		Example: "Spins a lot, jumps, likes leaping from heights.",
		Explain: "Often tied to hyposensitivity: the child feels less and tries to \"top up\" through movement.",
	},
	{
		ID: "N9", Domain: DomainSensory, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child like producing certain sounds?",
		Example: "Makes loud noises, shrieks, repeats odd sounds.",
		Explain: "Can be sensory self-stimulation, meeting a sensory need.",
	},
	{
		ID: "N10", Domain: DomainSensory, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child fall apart under sensory overload?",
		Example: "Suddenly cries, screams, or loses control at a wedding, mall, or crowded visit.",
		Explain: "A sensory meltdown is not misbehavior but loss of self-regulation when the sensory system is overloaded.",
	},

	// Play and imagination (10)
	{
		ID: "L1", Domain: DomainPlay, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child engage in role play?",
		Example: "Pretends to feed a doll, drive a car, or talk on a phone.",
		Explain: "Imaginative role play reflects social thinking; on the spectrum it may be sparse or absent.",
	},
	{
		ID: "L2", Domain: DomainPlay, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child use toys for their purpose?",
		Example: "Drives a car around, throws a ball — or only spins the car's wheels.",
		Explain: "Functional play; on the spectrum a toy may not be used for its purpose.",
	},
	{
		ID: "L3", Domain: DomainPlay, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Can the child build a storyline during play?",
		Example: "Plays with a small narrative: \"the toy fell asleep\", \"the car went home\".",
		Explain: "Narrative play ties to imagination and reasoning; play is often plotless on the spectrum.",
	},
	{
		ID: "L4", Domain: DomainPlay, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child play the same game over and over?",
		Example: "Plays a single game every day and rejects any other.",
		Explain: "Can signal low flexibility; adjusting to novelty is hard on the spectrum.",
	},
	{
		ID: "L5", Domain: DomainPlay, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child include other children or adults in play?",
		Example: "Calls \"let's play\" or takes turns — or prefers to play alone.",
		Explain: "Social play shows communication and cooperation; play is often solitary on the spectrum.",
	},
	{
		ID: "L6", Domain: DomainPlay, Polarity: PolarityNegative, Bands: allBands,
		Text:    "Does the child use toys only for spinning or lining up?",
		Example: "Spins wheels or lines toys up in rows.",
		Explain: "Non-functional play; play centers on repetitive actions.",
	},
	{
		ID: "L7", Domain: DomainPlay, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child do pretend actions?",
		Example: "Drinks from an empty cup or pretends to talk on a phone.",
		Explain: "Pretend play is playing with imagination; the ability can be limited on the spectrum.",
	},
	{
		ID: "L8", Domain: DomainPlay, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child express emotion during play?",
		Example: "Says \"oh no\" when a toy falls, laughs when happy.",
		Explain: "Emotion in play marks emotional integration; feelings may show little in play on the spectrum.",
	},
	{
		ID: "L9", Domain: DomainPlay, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Can the child start a game independently?",
		Example: "Picks a game and begins on their own — or plays only if an adult starts.",
		Explain: "Initiative marks cognitive and social development; it can be low on the spectrum.",
	},
	{
		ID: "L10", Domain: DomainPlay, Polarity: PolarityPositive, Bands: allBands,
		Text:    "Does the child understand simple rules in games?",
		Example: "Waits for a turn, follows \"now you, then me\".",
		Explain: "Understanding and following rules ties to cognitive adaptation, which can be difficult on the spectrum.",
	},
}
